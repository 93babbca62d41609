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

const rankingResponse = "<think>\nThe user wants two cities.\n</think>\n```json\n" + `{
  "Kyoto": [
    {"name": "Fushimi Inari", "description": "Torii gates", "importance_score": 9.5, "average_visit_time_hours": 3, "best_time_of_day": "Morning"},
    {"name": "Gion", "description": "Geisha district", "importance_score": 8, "average_visit_time_hours": 2, "best_time_of_day": "Evening"}
  ],
  "Tokyo": [
    {"name": "Senso-ji", "description": "Temple", "importance_score": 9, "average_visit_time_hours": 1.5, "best_time_of_day": "Morning"}
  ]
}` + "\n```"

func TestRankAttractions_ParsesSanitizedResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	cfg := config.Default()

	client.EXPECT().
		GenerateText(gomock.Any(), cfg.RankModel, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, prompt string) (string, error) {
			assert.Contains(t, prompt, "Kyoto, Tokyo")
			assert.Contains(t, prompt, "list 10 must-visit attractions")
			return rankingResponse, nil
		})

	ranker := NewAttractionRanker(client, cfg, zaptest.NewLogger(t))
	ranked, err := ranker.RankAttractions(context.Background(), []string{"Kyoto", "Tokyo"})
	require.NoError(t, err)

	require.Equal(t, 2, ranked.Len())
	assert.Equal(t, "Kyoto", ranked.Oldest().Key)

	kyoto, ok := ranked.Get("Kyoto")
	require.True(t, ok)
	require.Len(t, kyoto, 2)
	assert.Equal(t, "Fushimi Inari", kyoto[0].Name)
	assert.Equal(t, 9.5, kyoto[0].ImportanceScore)
	assert.Equal(t, 3.0, kyoto[0].AverageVisitTimeHours)
	assert.Equal(t, "Morning", kyoto[0].BestTimeOfDay)
}

func TestRankAttractions_UsesConfiguredCountAndModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	cfg := config.Default()
	cfg.RankModel = "llama3:8b"
	cfg.AttractionsPerCity = 4

	client.EXPECT().
		GenerateText(gomock.Any(), "llama3:8b", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, prompt string) (string, error) {
			assert.Contains(t, prompt, "list 4 must-visit attractions")
			return `{"Lisbon": []}`, nil
		})

	ranked, err := NewAttractionRanker(client, cfg, zaptest.NewLogger(t)).
		RankAttractions(context.Background(), []string{"Lisbon"})
	require.NoError(t, err)
	assert.Equal(t, 1, ranked.Len())
}

func TestRankAttractions_DuplicateInputCitiesNotDeduplicated(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	cfg := config.Default()

	client.EXPECT().
		GenerateText(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, prompt string) (string, error) {
			assert.Contains(t, prompt, "Rome, Rome")
			return `{"Rome": [{"name": "Colosseum", "importance_score": 10, "average_visit_time_hours": 2}]}`, nil
		})

	ranked, err := NewAttractionRanker(client, cfg, zaptest.NewLogger(t)).
		RankAttractions(context.Background(), []string{"Rome", "Rome"})
	require.NoError(t, err)
	assert.Equal(t, 1, ranked.Len())
}

func TestRankAttractions_HardFailures(t *testing.T) {
	tests := []struct {
		name     string
		response string
		callErr  error
		is       []error
	}{
		{name: "model unavailable", callErr: errors.New("connection refused"), is: []error{utils.ErrRankingFailed, utils.ErrUpstreamGeneration}},
		{name: "prose", response: "Sorry, I can't do that.", is: []error{utils.ErrRankingFailed, utils.ErrMalformedResponse}},
		{name: "empty", response: "", is: []error{utils.ErrRankingFailed, utils.ErrMalformedResponse}},
		{name: "empty object", response: "{}", is: []error{utils.ErrRankingFailed, utils.ErrMalformedResponse}},
		{name: "list instead of map", response: `[{"name": "x"}]`, is: []error{utils.ErrRankingFailed, utils.ErrMalformedResponse}},
		{name: "city not a list", response: `{"Paris": "Louvre"}`, is: []error{utils.ErrRankingFailed, utils.ErrMalformedResponse}},
		{name: "score as text", response: `{"Paris": [{"name": "Louvre", "importance_score": "high"}]}`, is: []error{utils.ErrRankingFailed, utils.ErrMalformedResponse}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)
			client.EXPECT().GenerateText(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.response, tt.callErr)

			ranked, err := NewAttractionRanker(client, config.Default(), zaptest.NewLogger(t)).
				RankAttractions(context.Background(), []string{"Paris"})

			require.Error(t, err)
			assert.Nil(t, ranked)
			for _, target := range tt.is {
				assert.ErrorIs(t, err, target)
			}
		})
	}
}

func TestRankAttractions_NoCitiesNeverCallsModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	_, err := NewAttractionRanker(client, config.Default(), zaptest.NewLogger(t)).
		RankAttractions(context.Background(), nil)
	require.ErrorIs(t, err, utils.ErrNoCities)
}
