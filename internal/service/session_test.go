package service

import (
	"context"
	"testing"
	"time"

	"sensitive-places-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedSearcher blocks every search on its address until released or cancelled.
type gatedSearcher struct {
	started chan string
	release map[string]chan struct{}
}

func (g *gatedSearcher) Search(ctx context.Context, req SearchRequest) (*models.NearbySearch, error) {
	g.started <- req.Address
	select {
	case <-g.release[req.Address]:
		return &models.NearbySearch{Radius: req.Radius}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestSession_LatestRequestWins(t *testing.T) {
	g := &gatedSearcher{
		started: make(chan string, 2),
		release: map[string]chan struct{}{
			"old": make(chan struct{}),
			"new": make(chan struct{}),
		},
	}
	session := NewSession(g)

	oldDone := make(chan error, 1)
	go func() {
		_, err := session.Search(context.Background(), SearchRequest{Address: "old", Radius: 200})
		oldDone <- err
	}()
	require.Equal(t, "old", <-g.started)

	newDone := make(chan *models.NearbySearch, 1)
	go func() {
		res, err := session.Search(context.Background(), SearchRequest{Address: "new", Radius: 400})
		assert.NoError(t, err)
		newDone <- res
	}()
	require.Equal(t, "new", <-g.started)

	select {
	case err := <-oldDone:
		assert.ErrorIs(t, err, ErrSearchSuperseded)
	case <-time.After(2 * time.Second):
		t.Fatal("superseded search was not cancelled")
	}

	close(g.release["new"])
	res := <-newDone
	require.NotNil(t, res)
	assert.Equal(t, 400, res.Radius)

	latest, seq := session.Latest()
	assert.Equal(t, res, latest)
	assert.Equal(t, uint64(2), seq)
}

func TestSession_StoresLatestResult(t *testing.T) {
	g := &gatedSearcher{
		started: make(chan string, 1),
		release: map[string]chan struct{}{"only": make(chan struct{})},
	}
	close(g.release["only"])
	session := NewSession(g)

	first, err := session.Search(context.Background(), SearchRequest{Address: "only", Radius: 300})
	require.NoError(t, err)
	assert.Equal(t, "only", <-g.started)

	latest, seq := session.Latest()
	assert.Equal(t, first, latest)
	assert.Equal(t, uint64(1), seq)
}

func TestSession_FailedSearchStoresNothing(t *testing.T) {
	searcher := newFakeSearcher().status("school", "UNKNOWN_ERROR")
	svc := NewNearbyService(searcher, nil, NearbyOptions{SensitiveTags: []string{"school"}})
	session := NewSession(svc)

	_, err := session.Search(context.Background(), SearchRequest{Center: &rome, Radius: 300})
	assert.ErrorIs(t, err, ErrProviderQuery)

	latest, seq := session.Latest()
	assert.Nil(t, latest)
	assert.Zero(t, seq)
}
