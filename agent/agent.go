package agent

import (
	"context"

	"github.com/agentgraph-dev/agentgraph/log"
	"github.com/agentgraph-dev/agentgraph/store"
)

// Agent is anything that turns an input into an output. Implementations in
// this package are stateless between calls except for explicitly shared
// structures (the knowledge graph, mailboxes).
type Agent interface {
	// Name identifies the agent in logs and session records.
	Name() string

	// Process handles one input and returns the agent's answer. Soft
	// misses (nothing found, nothing understood) are answers, not errors;
	// errors mean the agent could not run.
	Process(ctx context.Context, input string) (string, error)
}

// sessionRecorder appends records to a session store. A nil recorder or a
// recorder without a store records nothing. Recording failures are logged
// and swallowed; transcripts are advisory and never fail an agent run.
type sessionRecorder struct {
	store     store.SessionStore
	sessionID string
	logger    log.Logger
	seq       int
}

func newSessionRecorder(st store.SessionStore, sessionID string, logger log.Logger) *sessionRecorder {
	if st == nil {
		return nil
	}
	if sessionID == "" {
		sessionID = store.NewSessionID()
	}
	return &sessionRecorder{store: st, sessionID: sessionID, logger: logger}
}

func (r *sessionRecorder) record(ctx context.Context, agent, input, output string, metadata map[string]any) {
	if r == nil {
		return
	}
	r.seq++
	rec := store.NewRecord(r.sessionID, agent, input, output, r.seq)
	rec.Metadata = metadata
	if err := r.store.Save(ctx, rec); err != nil && r.logger != nil {
		r.logger.Warn("failed to record session step %d for %s: %v", r.seq, agent, err)
	}
}
