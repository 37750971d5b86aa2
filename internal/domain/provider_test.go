package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestProviderRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		providerNames []string
		wantCount     int
		getByName     string
		wantGetResult bool
	}{
		{
			name:          "empty registry",
			providerNames: nil,
			wantCount:     0,
			getByName:     "vietjet",
			wantGetResult: false,
		},
		{
			name:          "single provider",
			providerNames: []string{"vietjet"},
			wantCount:     1,
			getByName:     "vietjet",
			wantGetResult: true,
		},
		{
			name:          "both providers",
			providerNames: []string{"vietjet", "vietnamair"},
			wantCount:     2,
			getByName:     "vietnamair",
			wantGetResult: true,
		},
		{
			name:          "get non-existent provider",
			providerNames: []string{"vietjet"},
			wantCount:     1,
			getByName:     "nonexistent",
			wantGetResult: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewProviderRegistry()

			for _, name := range tt.providerNames {
				mock := NewMockFareProvider(ctrl)
				mock.EXPECT().Name().Return(name).AnyTimes()
				registry.Register(mock)
			}

			assert.Equal(t, tt.wantCount, registry.Count())
			assert.Len(t, registry.All(), tt.wantCount)

			_, found := registry.Get(tt.getByName)
			assert.Equal(t, tt.wantGetResult, found)
		})
	}
}

func TestProviderRegistry_DuplicateNameReplaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := NewMockFareProvider(ctrl)
	first.EXPECT().Name().Return("vietjet").AnyTimes()
	second := NewMockFareProvider(ctrl)
	second.EXPECT().Name().Return("vietjet").AnyTimes()

	registry := NewProviderRegistry()
	registry.Register(first)
	registry.Register(second)

	assert.Equal(t, 1, registry.Count())
	got, found := registry.Get("vietjet")
	assert.True(t, found)
	assert.Same(t, second, got)
}

func TestProviderRegistry_PreservesRegistrationOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewProviderRegistry()
	for _, name := range []string{"vietjet", "vietnamair"} {
		mock := NewMockFareProvider(ctrl)
		mock.EXPECT().Name().Return(name).AnyTimes()
		registry.Register(mock)
	}

	all := registry.All()
	assert.Equal(t, "vietjet", all[0].Name())
	assert.Equal(t, "vietnamair", all[1].Name())
}
