package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"itinera/internal/config"
	"itinera/pkg/llm/mocks"
	"itinera/pkg/utils"
)

func TestSuggestCities(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     []string
	}{
		{name: "plain list", response: "Tokyo, Kyoto, Osaka", want: []string{"Tokyo", "Kyoto", "Osaka"}},
		{name: "duplicates keep first", response: "Tokyo, Kyoto, Tokyo, Osaka, Kyoto", want: []string{"Tokyo", "Kyoto", "Osaka"}},
		{name: "blank entries dropped", response: " Tokyo ,, Kyoto ,\n", want: []string{"Tokyo", "Kyoto"}},
		{name: "reasoning stripped", response: "<think>Japan, hmm</think>\nTokyo, Nara", want: []string{"Tokyo", "Nara"}},
		{name: "empty answer", response: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)
			cfg := config.Default()

			client.EXPECT().
				GenerateText(gomock.Any(), cfg.RankModel, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, prompt string) (string, error) {
					assert.Contains(t, prompt, "exactly 10 popular tourist cities in Japan")
					return tt.response, nil
				})

			cities, err := NewCityService(client, cfg, zaptest.NewLogger(t)).SuggestCities(context.Background(), " Japan ")
			require.NoError(t, err)
			assert.Equal(t, tt.want, cities)
		})
	}
}

func TestSuggestCities_Errors(t *testing.T) {
	t.Run("missing country", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)

		cities, err := NewCityService(client, config.Default(), zaptest.NewLogger(t)).SuggestCities(context.Background(), "  ")
		require.ErrorIs(t, err, utils.ErrValidation)
		require.ErrorIs(t, err, utils.ErrMissingCountry)
		assert.NotNil(t, cities)
		assert.Empty(t, cities)
	})

	t.Run("model unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		client.EXPECT().GenerateText(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("dial tcp: refused"))

		cities, err := NewCityService(client, config.Default(), zaptest.NewLogger(t)).SuggestCities(context.Background(), "Japan")
		require.ErrorIs(t, err, utils.ErrUpstreamGeneration)
		assert.Empty(t, cities)
	})
}

func TestValidateCity(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{answer: "YES", want: true},
		{answer: "yes", want: true},
		{answer: "Yes, Kyoto is in Japan.", want: true},
		{answer: "  yEs\n", want: true},
		{answer: "NO", want: false},
		{answer: "No, it is not.", want: false},
		{answer: "", want: false},
		{answer: "Y E S", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)
			client.EXPECT().
				GenerateText(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, prompt string) (string, error) {
					assert.Contains(t, prompt, `"Kyoto"`)
					assert.Contains(t, prompt, `"Japan"`)
					return tt.answer, nil
				})

			valid, err := NewCityService(client, config.Default(), zaptest.NewLogger(t)).
				ValidateCity(context.Background(), "Japan", "Kyoto")
			require.NoError(t, err)
			assert.Equal(t, tt.want, valid)
		})
	}
}

func TestValidateCity_Errors(t *testing.T) {
	tests := []struct {
		name    string
		country string
		city    string
		is      error
	}{
		{name: "missing country", country: "", city: "Kyoto", is: utils.ErrMissingCountry},
		{name: "missing city", country: "Japan", city: " ", is: utils.ErrMissingCity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)

			valid, err := NewCityService(client, config.Default(), zaptest.NewLogger(t)).
				ValidateCity(context.Background(), tt.country, tt.city)
			require.ErrorIs(t, err, utils.ErrValidation)
			require.ErrorIs(t, err, tt.is)
			assert.False(t, valid)
		})
	}

	t.Run("model unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		client.EXPECT().GenerateText(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("timeout"))

		valid, err := NewCityService(client, config.Default(), zaptest.NewLogger(t)).
			ValidateCity(context.Background(), "Japan", "Kyoto")
		require.ErrorIs(t, err, utils.ErrUpstreamGeneration)
		assert.False(t, valid)
	})
}
