package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftbridge/platform_be_craftbridge/internal/models"
	"github.com/craftbridge/platform_be_craftbridge/internal/store"
)

func TestBidSubmit(t *testing.T) {
	st := testStore(t)
	svc := NewBidService(st)
	ctx := context.Background()

	community := newCommunity(t, st, "owner@example.com")
	engineer := newEngineer(t, st, "eng@example.com")
	p := newOpenProject(t, st, community)

	t.Run("community accounts cannot bid", func(t *testing.T) {
		_, err := svc.Submit(ctx, community, SubmitBidInput{
			ProjectID:        p.ID,
			ProposedBudget:   100,
			ProposedTimeline: "1 week",
		})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("timeline required", func(t *testing.T) {
		_, err := svc.Submit(ctx, engineer, SubmitBidInput{
			ProjectID:      p.ID,
			ProposedBudget: 100,
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("negative budget rejected", func(t *testing.T) {
		_, err := svc.Submit(ctx, engineer, SubmitBidInput{
			ProjectID:        p.ID,
			ProposedBudget:   -5,
			ProposedTimeline: "1 week",
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("first bid lands pending", func(t *testing.T) {
		b, err := svc.Submit(ctx, engineer, SubmitBidInput{
			ProjectID:        p.ID,
			ProposedBudget:   100,
			ProposedTimeline: "1 weekend",
			Message:          "I have the tools.",
		})
		require.NoError(t, err)
		assert.Equal(t, models.BidStatusPending, b.Status)
	})

	t.Run("second bid on same project conflicts", func(t *testing.T) {
		_, err := svc.Submit(ctx, engineer, SubmitBidInput{
			ProjectID:        p.ID,
			ProposedBudget:   80,
			ProposedTimeline: "3 days",
		})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("non-open project refuses bids", func(t *testing.T) {
		p2 := newOpenProject(t, st, community)
		p2.Status = models.ProjectStatusCancelled
		require.NoError(t, st.Projects.Save(ctx, p2))

		other := newEngineer(t, st, "other@example.com")
		_, err := svc.Submit(ctx, other, SubmitBidInput{
			ProjectID:        p2.ID,
			ProposedBudget:   50,
			ProposedTimeline: "1 day",
		})
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestBidAccept(t *testing.T) {
	st := testStore(t)
	svc := NewBidService(st)
	ctx := context.Background()

	community := newCommunity(t, st, "owner@example.com")
	e1 := newEngineer(t, st, "e1@example.com")
	e2 := newEngineer(t, st, "e2@example.com")
	p := newOpenProject(t, st, community)

	b1, err := svc.Submit(ctx, e1, SubmitBidInput{ProjectID: p.ID, ProposedBudget: 100, ProposedTimeline: "1 week"})
	require.NoError(t, err)
	b2, err := svc.Submit(ctx, e2, SubmitBidInput{ProjectID: p.ID, ProposedBudget: 90, ProposedTimeline: "2 weeks"})
	require.NoError(t, err)

	t.Run("only the owner decides", func(t *testing.T) {
		_, err := svc.SetStatus(ctx, e2, b1.ID, "accepted")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("only accepted or rejected are valid", func(t *testing.T) {
		_, err := svc.SetStatus(ctx, community, b1.ID, "pending")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("accepting moves the project in progress", func(t *testing.T) {
		got, err := svc.SetStatus(ctx, community, b1.ID, "accepted")
		require.NoError(t, err)
		assert.Equal(t, models.BidStatusAccepted, got.Status)

		proj, err := st.Projects.ByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ProjectStatusInProgress, proj.Status)
	})

	t.Run("second acceptance blocked", func(t *testing.T) {
		_, err := svc.SetStatus(ctx, community, b2.ID, "accepted")
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("sibling can still be rejected", func(t *testing.T) {
		got, err := svc.SetStatus(ctx, community, b2.ID, "rejected")
		require.NoError(t, err)
		assert.Equal(t, models.BidStatusRejected, got.Status)
	})

	t.Run("decided bid cannot be re-decided", func(t *testing.T) {
		_, err := svc.SetStatus(ctx, community, b2.ID, "accepted")
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestBidWithdraw(t *testing.T) {
	st := testStore(t)
	svc := NewBidService(st)
	ctx := context.Background()

	community := newCommunity(t, st, "owner@example.com")
	e1 := newEngineer(t, st, "e1@example.com")
	e2 := newEngineer(t, st, "e2@example.com")
	p := newOpenProject(t, st, community)

	b1, err := svc.Submit(ctx, e1, SubmitBidInput{ProjectID: p.ID, ProposedBudget: 100, ProposedTimeline: "1 week"})
	require.NoError(t, err)

	t.Run("only the bidder withdraws", func(t *testing.T) {
		assert.ErrorIs(t, svc.Withdraw(ctx, e2, b1.ID), ErrForbidden)
		assert.ErrorIs(t, svc.Withdraw(ctx, community, b1.ID), ErrForbidden)
	})

	t.Run("pending bid withdraws cleanly", func(t *testing.T) {
		require.NoError(t, svc.Withdraw(ctx, e1, b1.ID))
		_, err := st.Bids.ByID(ctx, b1.ID)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("accepted bid cannot be withdrawn", func(t *testing.T) {
		b, err := svc.Submit(ctx, e2, SubmitBidInput{ProjectID: p.ID, ProposedBudget: 90, ProposedTimeline: "2 weeks"})
		require.NoError(t, err)
		_, err = svc.SetStatus(ctx, community, b.ID, "accepted")
		require.NoError(t, err)

		assert.ErrorIs(t, svc.Withdraw(ctx, e2, b.ID), ErrInvalidState)
	})
}

func TestBidVisibility(t *testing.T) {
	st := testStore(t)
	svc := NewBidService(st)
	ctx := context.Background()

	community := newCommunity(t, st, "owner@example.com")
	stranger := newCommunity(t, st, "stranger@example.com")
	engineer := newEngineer(t, st, "eng@example.com")
	p := newOpenProject(t, st, community)

	_, err := svc.Submit(ctx, engineer, SubmitBidInput{ProjectID: p.ID, ProposedBudget: 100, ProposedTimeline: "1 week"})
	require.NoError(t, err)

	t.Run("owner sees bids", func(t *testing.T) {
		bids, err := svc.ListByProject(ctx, community, p.ID)
		require.NoError(t, err)
		assert.Len(t, bids, 1)
	})

	t.Run("engineers see bids", func(t *testing.T) {
		bids, err := svc.ListByProject(ctx, engineer, p.ID)
		require.NoError(t, err)
		assert.Len(t, bids, 1)
	})

	t.Run("unrelated community blocked", func(t *testing.T) {
		_, err := svc.ListByProject(ctx, stranger, p.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("mine lists only my bids", func(t *testing.T) {
		mine, err := svc.ListMine(ctx, engineer)
		require.NoError(t, err)
		assert.Len(t, mine, 1)

		_, err = svc.ListMine(ctx, community)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}
