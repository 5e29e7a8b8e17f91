package main

import (
	"context"
	"os"

	"github.com/G-omar-H/weLovePadel-sub000/api"
	"github.com/G-omar-H/weLovePadel-sub000/internal/analytics"
	"github.com/G-omar-H/weLovePadel-sub000/internal/catalog"
	"github.com/G-omar-H/weLovePadel-sub000/internal/district"
	"github.com/G-omar-H/weLovePadel-sub000/internal/mailer"
	"github.com/G-omar-H/weLovePadel-sub000/internal/notifier"
	"github.com/G-omar-H/weLovePadel-sub000/internal/paypal"
	"github.com/G-omar-H/weLovePadel-sub000/internal/sendit"
	"github.com/G-omar-H/weLovePadel-sub000/internal/store"
	"github.com/G-omar-H/weLovePadel-sub000/internal/util"
	"github.com/G-omar-H/weLovePadel-sub000/internal/worker"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configurations
	config, err := util.LoadConfig("./app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config file 😣")
	}

	log.Info().Msg("configurations loaded successfully ✅")

	redisDb := redis.NewClient(&redis.Options{
		Addr:     config.RedisServerAddress,
		Password: "", // no password set
		DB:       0,  // use default DB
	})

	if err = redisDb.Ping(context.Background()).Err(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis 😣")
	}
	log.Info().Msg("connected to redis ✅")

	dbStore := store.NewRedisStore(redisDb)
	productCatalog := catalog.NewCatalog()

	senditClient := sendit.NewClient(config.SenditBaseURL, config.SenditPublicKey, config.SenditSecretKey)

	districtCatalog := district.NewCatalog(senditClient)
	if err = districtCatalog.Refresh(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to load district catalog 😣")
	}
	log.Info().Int("districts", len(districtCatalog.Snapshot())).Msg("district catalog loaded ✅")

	if err = districtCatalog.StartAutoRefresh(config.DistrictRefreshInterval); err != nil {
		log.Fatal().Err(err).Msg("failed to schedule district refresh 😣")
	}

	paypalClient := paypal.NewClient(config.PaypalBaseURL, config.PaypalClientID, config.PaypalClientSecret)

	var mailService worker.ConfirmationSender
	if config.GmailSMTPUsername != "" && config.GmailSMTPPassword != "" {
		gmailSender, err := mailer.NewGmailSender(config.GmailSMTPUsername, config.GmailSMTPPassword, config)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create mailer service 😣")
		}
		mailService = gmailSender
	} else {
		log.Warn().Msg("gmail credentials missing, confirmation emails disabled")
	}

	var ownerNotifier worker.OwnerNotifier
	if config.DiscordBotToken != "" && config.DiscordChannelID != "" {
		discordNotifier, err := notifier.NewDiscordNotifier(config.DiscordBotToken, config.DiscordChannelID)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create discord notifier 😣")
		}
		ownerNotifier = discordNotifier
	} else {
		log.Warn().Msg("discord credentials missing, owner notifications disabled")
	}

	var purchaseReporter worker.PurchaseReporter
	if config.MetaPixelID != "" && config.MetaAccessToken != "" {
		purchaseReporter = analytics.NewMetaPixel(config.MetaPixelID, config.MetaAccessToken)
	} else {
		log.Warn().Msg("meta pixel credentials missing, purchase events disabled")
	}

	redisOpt := asynq.RedisClientOpt{Addr: config.RedisServerAddress}
	taskDistributor := worker.NewTaskDistributor(redisOpt)

	go runTaskProcessor(redisOpt, dbStore, paypalClient, mailService, ownerNotifier, purchaseReporter)
	runHTTPServer(config, dbStore, productCatalog, districtCatalog, senditClient, paypalClient, taskDistributor)
}

func runTaskProcessor(
	redisOpt asynq.RedisClientOpt,
	dbStore store.Store,
	paypalClient *paypal.Client,
	mailService worker.ConfirmationSender,
	ownerNotifier worker.OwnerNotifier,
	purchaseReporter worker.PurchaseReporter,
) {
	taskProcessor := worker.NewRedisTaskProcessor(redisOpt, dbStore, paypalClient, mailService, ownerNotifier, purchaseReporter)

	log.Info().Msg("starting task processor ✅")
	if err := taskProcessor.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start task processor 😣")
	}
}

func runHTTPServer(
	config util.Config,
	dbStore store.Store,
	productCatalog *catalog.Catalog,
	districtCatalog *district.Catalog,
	senditClient *sendit.Client,
	paypalClient *paypal.Client,
	taskDistributor worker.TaskDistributor,
) {
	server, err := api.NewServer(&config, dbStore, productCatalog, districtCatalog, senditClient, paypalClient, taskDistributor)

	if err != nil {
		log.Fatal().Err(err).Msg("failed to create HTTP server 😣")
	}

	err = server.Start(config.HTTPServerAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start HTTP server 😣")
	}
}
