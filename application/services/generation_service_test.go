package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"insightapi/domain/analysis"
	pkgerrors "insightapi/pkg/errors"
)

type fakeModel struct {
	complete func(ctx context.Context, prompt string) (string, error)
}

func (m *fakeModel) Complete(ctx context.Context, prompt string) (string, error) {
	return m.complete(ctx, prompt)
}

const wellFormedResponse = `## Strengths
- strong point

## Weaknesses
- weak point

## Opportunities
- open door

## Threats
- looming risk`

func validRequest(t *testing.T) analysis.Request {
	t.Helper()
	req, err := analysis.NewRequest("An independent game studio with two titles.", analysis.ModeStartup, analysis.KindSWOT)
	require.NoError(t, err)
	return req
}

func newService(model *fakeModel) *GenerationService {
	return NewGenerationService(model, nil, nil, nil, zap.NewNop())
}

func TestGenerate_Success(t *testing.T) {
	var gotPrompt string
	model := &fakeModel{complete: func(ctx context.Context, prompt string) (string, error) {
		gotPrompt = prompt
		return wellFormedResponse, nil
	}}
	svc := newService(model)

	result, err := svc.Generate(context.Background(), "user-1", validRequest(t))
	require.NoError(t, err)

	assert.Contains(t, gotPrompt, "An independent game studio with two titles.")
	assert.Equal(t, []string{"strong point"}, result.Record.Strengths)
	assert.True(t, result.Series.Equals(analysis.DeriveChartSeries(result.Record)))
}

func TestGenerate_RequiresUser(t *testing.T) {
	svc := newService(&fakeModel{complete: func(ctx context.Context, prompt string) (string, error) {
		t.Fatal("model must not be called")
		return "", nil
	}})

	_, err := svc.Generate(context.Background(), "", validRequest(t))
	require.Error(t, err)
	assert.True(t, pkgerrors.IsUnauthorized(err))
}

func TestGenerate_UpstreamFailure(t *testing.T) {
	svc := newService(&fakeModel{complete: func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("connection reset")
	}})

	_, err := svc.Generate(context.Background(), "user-1", validRequest(t))
	require.Error(t, err)
	assert.True(t, pkgerrors.IsUpstream(err))
}

func TestGenerate_MalformedResponse(t *testing.T) {
	svc := newService(&fakeModel{complete: func(ctx context.Context, prompt string) (string, error) {
		return "sorry, I cannot help with that", nil
	}})

	_, err := svc.Generate(context.Background(), "user-1", validRequest(t))
	require.Error(t, err)
	assert.True(t, pkgerrors.IsMalformedResponse(err))
}

func TestGenerate_DuplicateSubmissionConflicts(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var startedOnce sync.Once

	// The third call re-enters the fake after release is closed, so the
	// channel operations must tolerate repeated calls.
	svc := newService(&fakeModel{complete: func(ctx context.Context, prompt string) (string, error) {
		startedOnce.Do(func() { close(started) })
		<-release
		return wellFormedResponse, nil
	}})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := svc.Generate(context.Background(), "user-1", validRequest(t))
		assert.NoError(t, err)
	}()

	<-started
	_, err := svc.Generate(context.Background(), "user-1", validRequest(t))
	require.Error(t, err)
	assert.True(t, pkgerrors.IsConflict(err))

	close(release)
	wg.Wait()

	// The slot is free again after completion.
	_, err = svc.Generate(context.Background(), "user-1", validRequest(t))
	assert.NoError(t, err)
}

func TestGenerate_DifferentUsersDoNotConflict(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var first atomic.Bool
	first.Store(true)

	// Only the first caller parks on release; the second user's call must
	// complete while the first is still in flight.
	svc := newService(&fakeModel{complete: func(ctx context.Context, prompt string) (string, error) {
		if first.CompareAndSwap(true, false) {
			close(started)
			<-release
		}
		return wellFormedResponse, nil
	}})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := svc.Generate(context.Background(), "user-1", validRequest(t))
		assert.NoError(t, err)
	}()

	<-started
	_, err := svc.Generate(context.Background(), "user-2", validRequest(t))
	assert.NoError(t, err)

	close(release)
	wg.Wait()
}
