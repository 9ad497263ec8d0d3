package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/agentgraph-dev/agentgraph/kg"
	"github.com/agentgraph-dev/agentgraph/log"
	"github.com/agentgraph-dev/agentgraph/store"
)

// KGAgent answers questions against a knowledge graph. Entity extraction is
// plain substring matching of known entity names inside the lowered
// question; when several entities match, first-seen graph order decides.
type KGAgent struct {
	graph    *kg.Graph
	maxDepth int
	logger   log.Logger
	recorder *sessionRecorder

	sessionStore store.SessionStore
	sessionID    string
}

// KGAgentOption configures a KGAgent.
type KGAgentOption func(*KGAgent)

// WithMaxDepth bounds the path search used for connection questions.
func WithMaxDepth(depth int) KGAgentOption {
	return func(a *KGAgent) {
		a.maxDepth = depth
	}
}

// WithKGAgentLogger sets the logger.
func WithKGAgentLogger(logger log.Logger) KGAgentOption {
	return func(a *KGAgent) {
		a.logger = logger
	}
}

// WithKGAgentSession records every answered question to the given store
// under sessionID; an empty sessionID gets a fresh one.
func WithKGAgentSession(st store.SessionStore, sessionID string) KGAgentOption {
	return func(a *KGAgent) {
		a.sessionStore = st
		a.sessionID = sessionID
	}
}

// NewKGAgent creates an agent over the given graph.
func NewKGAgent(graph *kg.Graph, opts ...KGAgentOption) *KGAgent {
	a := &KGAgent{
		graph:    graph,
		maxDepth: kg.DefaultMaxDepth,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.recorder = newSessionRecorder(a.sessionStore, a.sessionID, a.logger)
	return a
}

// Name identifies the agent.
func (a *KGAgent) Name() string {
	return "kg-agent"
}

// Process answers the question and records the interaction when a session
// store is configured.
func (a *KGAgent) Process(ctx context.Context, input string) (string, error) {
	answer := a.AnswerQuestion(input)
	a.recorder.record(ctx, a.Name(), input, answer, nil)
	return answer, nil
}

// AnswerQuestion answers a free-form question from the graph. Questions
// containing "what is"/"who is" get the facts about the first mentioned
// entity; questions containing "related"/"connection" get the relationship
// path between the first two mentioned entities. Everything else gets a
// help message.
func (a *KGAgent) AnswerQuestion(question string) string {
	lowered := strings.ToLower(question)

	switch {
	case strings.Contains(lowered, "what is") || strings.Contains(lowered, "who is"):
		entity, ok := a.firstMentionedEntity(lowered)
		if !ok {
			break
		}
		return a.describeEntity(entity)

	case strings.Contains(lowered, "related") || strings.Contains(lowered, "connection"):
		mentioned := a.mentionedEntities(lowered, 2)
		if len(mentioned) < 2 {
			break
		}
		return a.describeConnection(mentioned[0], mentioned[1])
	}

	return a.helpMessage()
}

// Facts renders every stored triple as a "subject predicate object" line.
func (a *KGAgent) Facts() []string {
	triples := a.graph.Triples()
	facts := make([]string, 0, len(triples))
	for _, t := range triples {
		facts = append(facts, fmt.Sprintf("%s %s %s", t.Subject, t.Predicate, t.Object))
	}
	return facts
}

func (a *KGAgent) firstMentionedEntity(loweredQuestion string) (string, bool) {
	for _, e := range a.graph.Entities() {
		if strings.Contains(loweredQuestion, strings.ToLower(e)) {
			return e, true
		}
	}
	return "", false
}

func (a *KGAgent) mentionedEntities(loweredQuestion string, limit int) []string {
	var out []string
	for _, e := range a.graph.Entities() {
		if strings.Contains(loweredQuestion, strings.ToLower(e)) {
			out = append(out, e)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

func (a *KGAgent) describeEntity(entity string) string {
	edges := a.graph.Neighbors(entity)
	if len(edges) == 0 {
		return fmt.Sprintf("No information found about %s", entity)
	}

	// Group objects by predicate in first-occurrence order so the answer
	// is stable across runs.
	var order []string
	grouped := make(map[string][]string)
	for _, e := range edges {
		if _, ok := grouped[e.Predicate]; !ok {
			order = append(order, e.Predicate)
		}
		grouped[e.Predicate] = append(grouped[e.Predicate], e.Object)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Information about %s:\n", entity)
	for _, p := range order {
		fmt.Fprintf(&sb, "  %s: %s\n", p, strings.Join(grouped[p], ", "))
	}
	return sb.String()
}

func (a *KGAgent) describeConnection(from, to string) string {
	path, found := a.graph.FindPath(from, to, a.maxDepth)
	if !found {
		return fmt.Sprintf("No connection found between %s and %s", from, to)
	}
	if len(path) == 0 {
		return fmt.Sprintf("%s and %s are the same entity", from, to)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Path from %s to %s:\n", from, to)
	for _, t := range path {
		fmt.Fprintf(&sb, "  %s --[%s]--> %s\n", t.Subject, t.Predicate, t.Object)
	}
	return sb.String()
}

func (a *KGAgent) helpMessage() string {
	entities := a.graph.Entities()
	if len(entities) > 5 {
		entities = entities[:5]
	}
	if len(entities) == 0 {
		return "I couldn't understand the question, and the knowledge graph is empty."
	}
	return fmt.Sprintf(
		"I couldn't understand the question. Try asking about specific entities or relationships, for example: %s.",
		strings.Join(entities, ", "))
}
