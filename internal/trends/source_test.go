package trends

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsninja/newsninja/internal/domain"
)

type stubProvider struct {
	name   string
	topics []domain.Topic
	err    error
	calls  int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) TryFetch(ctx context.Context, countryCode string, count int) ([]domain.Topic, error) {
	s.calls++
	return s.topics, s.err
}

func realTopics(keywords ...string) []domain.Topic {
	topics := make([]domain.Topic, len(keywords))
	for i, kw := range keywords {
		topics[i] = domain.Topic{Keyword: kw, Rank: i + 1, Popularity: 10000, IsReal: true}
	}
	return topics
}

func TestSource_GetTrends(t *testing.T) {
	ctx := context.Background()

	t.Run("first successful provider wins", func(t *testing.T) {
		first := &stubProvider{name: "first", topics: realTopics("a", "b", "c")}
		second := &stubProvider{name: "second", topics: realTopics("x")}
		src := NewSource(WithProviders(first, second))

		topics := src.GetTrends(ctx, "US", 3)

		require.Len(t, topics, 3)
		assert.Equal(t, "a", topics[0].Keyword)
		assert.Equal(t, 1, first.calls)
		assert.Equal(t, 0, second.calls)
	})

	t.Run("failing provider falls through to the next", func(t *testing.T) {
		broken := &stubProvider{name: "broken", err: errors.New("quota exceeded")}
		working := &stubProvider{name: "working", topics: realTopics("a", "b")}
		src := NewSource(WithProviders(broken, working))

		topics := src.GetTrends(ctx, "IT", 2)

		require.Len(t, topics, 2)
		assert.True(t, topics[0].IsReal)
		assert.Equal(t, 1, broken.calls)
		assert.Equal(t, 1, working.calls)
	})

	t.Run("all providers failing degrades to mock", func(t *testing.T) {
		broken := &stubProvider{name: "broken", err: errors.New("timeout")}
		empty := &stubProvider{name: "empty"}
		src := NewSource(WithProviders(broken, empty))

		topics := src.GetTrends(ctx, "FR", 4)

		require.Len(t, topics, 4)
		for i, topic := range topics {
			assert.False(t, topic.IsReal)
			assert.Equal(t, i+1, topic.Rank)
		}
	})

	t.Run("no providers configured degrades to mock", func(t *testing.T) {
		src := NewSource()

		topics := src.GetTrends(ctx, "JP", 5)

		require.Len(t, topics, 5)
		for _, topic := range topics {
			assert.False(t, topic.IsReal)
		}
	})

	t.Run("over-long provider batch trimmed and reranked", func(t *testing.T) {
		big := &stubProvider{name: "big", topics: realTopics("a", "b", "c", "d", "e")}
		src := NewSource(WithProviders(big))

		topics := src.GetTrends(ctx, "GB", 2)

		require.Len(t, topics, 2)
		assert.Equal(t, 1, topics[0].Rank)
		assert.Equal(t, 2, topics[1].Rank)
	})

	t.Run("short provider batch topped up with mock topics", func(t *testing.T) {
		small := &stubProvider{name: "small", topics: realTopics("only-one")}
		src := NewSource(WithProviders(small))

		topics := src.GetTrends(ctx, "ES", 3)

		require.Len(t, topics, 3)
		assert.True(t, topics[0].IsReal)
		assert.False(t, topics[1].IsReal)
		ranks := []int{topics[0].Rank, topics[1].Rank, topics[2].Rank}
		assert.Equal(t, []int{1, 2, 3}, ranks)
	})
}
