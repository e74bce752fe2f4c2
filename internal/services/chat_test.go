package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatGate(t *testing.T) {
	st := testStore(t)
	chat := NewChatService(st)
	bids := NewBidService(st)
	ctx := context.Background()

	community := newCommunity(t, st, "owner@example.com")
	accepted := newEngineer(t, st, "accepted@example.com")
	pending := newEngineer(t, st, "pending@example.com")
	stranger := newEngineer(t, st, "stranger@example.com")
	p := newOpenProject(t, st, community)

	b1, err := bids.Submit(ctx, accepted, SubmitBidInput{ProjectID: p.ID, ProposedBudget: 100, ProposedTimeline: "1 week"})
	require.NoError(t, err)
	_, err = bids.Submit(ctx, pending, SubmitBidInput{ProjectID: p.ID, ProposedBudget: 90, ProposedTimeline: "2 weeks"})
	require.NoError(t, err)
	_, err = bids.SetStatus(ctx, community, b1.ID, "accepted")
	require.NoError(t, err)

	t.Run("owner can post", func(t *testing.T) {
		_, err := chat.Post(ctx, community, p.ID, "When can you start?")
		assert.NoError(t, err)
	})

	t.Run("accepted engineer can post", func(t *testing.T) {
		_, err := chat.Post(ctx, accepted, p.ID, "Saturday morning.")
		assert.NoError(t, err)
	})

	t.Run("pending bidder blocked", func(t *testing.T) {
		_, err := chat.Post(ctx, pending, p.ID, "hello?")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("stranger blocked from reading", func(t *testing.T) {
		_, err := chat.List(ctx, stranger, p.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("empty body rejected", func(t *testing.T) {
		_, err := chat.Post(ctx, community, p.ID, "")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("log reads oldest first", func(t *testing.T) {
		msgs, err := chat.List(ctx, accepted, p.ID)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "When can you start?", msgs[0].Body)
		assert.Equal(t, "Saturday morning.", msgs[1].Body)
	})
}
