package api

import (
	"context"
	"testing"

	"github.com/G-omar-H/weLovePadel-sub000/internal/catalog"
	"github.com/G-omar-H/weLovePadel-sub000/internal/district"
	"github.com/G-omar-H/weLovePadel-sub000/internal/util"
	"github.com/stretchr/testify/require"
)

func TestNewServerRejectsIncompleteConfig(t *testing.T) {
	districtCatalog := district.NewCatalog(&fixedLister{entries: testDistrictEntries()})
	require.NoError(t, districtCatalog.Refresh(context.Background()))

	testCases := []struct {
		name   string
		config *util.Config
	}{
		{
			name: "missing pickup district",
			config: &util.Config{
				AllowedOrigins: []string{"http://localhost:3000"},
			},
		},
		{
			name: "missing allowed origins",
			config: &util.Config{
				SenditPickupDistrictID: 1,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewServer(tc.config, newMemoryStore(), catalog.NewCatalog(), districtCatalog, &scriptedCourier{}, nil, &nopDistributor{})
			require.Error(t, err)
		})
	}
}
