package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/agentgraph-dev/agentgraph/log"
	"github.com/agentgraph-dev/agentgraph/store"
)

// Role classifies what a worker is for. The supervisor routes subtasks by
// role, not by worker name.
type Role string

const (
	RoleSupervisor Role = "supervisor"
	RoleResearcher Role = "researcher"
	RoleWriter     Role = "writer"
	RoleReviewer   Role = "reviewer"
	RoleExecutor   Role = "executor"
)

// Message is one unit of inter-agent communication.
type Message struct {
	ID       string         `json:"id"`
	Sender   string         `json:"sender"`
	Receiver string         `json:"receiver"`
	Type     string         `json:"type"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
	SentAt   time.Time      `json:"sent_at"`
}

// NewMessage creates a message with a fresh UUID and the current time.
func NewMessage(sender, receiver, msgType, content string) Message {
	return Message{
		ID:       uuid.New().String(),
		Sender:   sender,
		Receiver: receiver,
		Type:     msgType,
		Content:  content,
		SentAt:   time.Now(),
	}
}

// Mailbox queues messages for a worker. It is mutex-guarded because the
// supervisor delivers while workers read.
type Mailbox struct {
	mu       sync.Mutex
	messages []Message
}

// Deliver appends a message.
func (m *Mailbox) Deliver(msg Message) {
	m.mu.Lock()
	m.messages = append(m.messages, msg)
	m.mu.Unlock()
}

// ByType returns the queued messages of the given type, oldest first,
// without removing them.
func (m *Mailbox) ByType(msgType string) []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Message
	for _, msg := range m.messages {
		if msg.Type == msgType {
			out = append(out, msg)
		}
	}
	return out
}

// Drain removes and returns every queued message.
func (m *Mailbox) Drain() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.messages
	m.messages = nil
	return out
}

// Len reports how many messages are queued.
func (m *Mailbox) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages)
}

// Worker is an agent that participates in a supervised system: it has a
// role for routing and a mailbox for receiving intermediate results.
type Worker interface {
	Agent
	Role() Role
	Mailbox() *Mailbox
}

// worker carries the common name/role/mailbox of every concrete worker.
type worker struct {
	name    string
	role    Role
	mailbox Mailbox
}

func (w *worker) Name() string      { return w.name }
func (w *worker) Role() Role        { return w.role }
func (w *worker) Mailbox() *Mailbox { return &w.mailbox }

// Researcher answers research subtasks from a small built-in knowledge
// base using case-insensitive keyword matching.
type Researcher struct {
	worker
	entries []searchEntry
}

type searchEntry struct {
	key   string
	value string
}

// NewResearcher creates a researcher named "Researcher".
func NewResearcher() *Researcher {
	return &Researcher{
		worker: worker{name: "Researcher", role: RoleResearcher},
		entries: []searchEntry{
			{"ai agents", "AI agents are autonomous systems that can perceive and act."},
			{"multi-agent", "Multi-agent systems involve multiple cooperating agents."},
			{"llm", "Large Language Models are trained on vast text corpora."},
		},
	}
}

// Process gathers findings whose keys occur in the lowered task.
func (r *Researcher) Process(ctx context.Context, task string) (string, error) {
	lowered := strings.ToLower(task)
	var findings []string
	for _, e := range r.entries {
		if strings.Contains(lowered, e.key) {
			findings = append(findings, e.value)
		}
	}
	if len(findings) == 0 {
		return "Research findings: General information gathered.", nil
	}
	return "Research findings: " + strings.Join(findings, " "), nil
}

// Writer produces content for a subtask, folding in any research results
// delivered to its mailbox.
type Writer struct {
	worker
}

// NewWriter creates a writer named "Writer".
func NewWriter() *Writer {
	return &Writer{worker: worker{name: "Writer", role: RoleWriter}}
}

// Process writes content, incorporating the first queued research result.
func (w *Writer) Process(ctx context.Context, task string) (string, error) {
	content := "Content created based on: " + task
	if research := w.mailbox.ByType("research_result"); len(research) > 0 {
		content += "\nIncorporating research: " + research[0].Content
	}
	return content, nil
}

// Reviewer checks content and reports issues or approval.
type Reviewer struct {
	worker
}

// NewReviewer creates a reviewer named "Reviewer".
func NewReviewer() *Reviewer {
	return &Reviewer{worker: worker{name: "Reviewer", role: RoleReviewer}}
}

// Process flags content that is too short; otherwise it approves.
func (r *Reviewer) Process(ctx context.Context, task string) (string, error) {
	var issues []string
	if len(task) < 20 {
		issues = append(issues, "Content seems too brief")
	}
	if len(issues) > 0 {
		return "Review complete. Issues found: " + strings.Join(issues, ", "), nil
	}
	return "Review complete. Content approved.", nil
}

// Executor handles whatever no specialist claims.
type Executor struct {
	worker
}

// NewExecutor creates an executor named "Executor".
func NewExecutor() *Executor {
	return &Executor{worker: worker{name: "Executor", role: RoleExecutor}}
}

// Process acknowledges execution of a generic task.
func (e *Executor) Process(ctx context.Context, task string) (string, error) {
	return "Task executed: " + task, nil
}

// Subtask is one routed unit of a decomposed task.
type Subtask struct {
	Role Role
	Task string
}

// Supervisor decomposes tasks by keyword, routes subtasks to workers by
// role and forwards each result to the next worker as a typed message.
type Supervisor struct {
	name    string
	workers []Worker
	logger  log.Logger
}

// NewSupervisor creates a supervisor with no workers registered.
func NewSupervisor(logger log.Logger) *Supervisor {
	if logger == nil {
		logger = log.Default()
	}
	return &Supervisor{name: "Supervisor", logger: logger}
}

// Name identifies the supervisor.
func (s *Supervisor) Name() string {
	return s.name
}

// RegisterWorker adds a worker; the first worker registered for a role
// receives that role's subtasks.
func (s *Supervisor) RegisterWorker(w Worker) {
	s.workers = append(s.workers, w)
}

// DecomposeTask splits a task into routed subtasks by keyword. Research
// tasks go through the researcher/writer/reviewer chain, analysis tasks
// through researcher/executor/writer, anything else straight to the
// executor.
func (s *Supervisor) DecomposeTask(task string) []Subtask {
	lowered := strings.ToLower(task)
	switch {
	case strings.Contains(lowered, "research"):
		return []Subtask{
			{RoleResearcher, "Research the topic: " + task},
			{RoleWriter, "Write a summary"},
			{RoleReviewer, "Review the content"},
		}
	case strings.Contains(lowered, "analysis"):
		return []Subtask{
			{RoleResearcher, "Gather data for: " + task},
			{RoleExecutor, "Analyze data"},
			{RoleWriter, "Create report"},
		}
	default:
		return []Subtask{{RoleExecutor, task}}
	}
}

// Process coordinates the workers through the decomposed task and
// aggregates their results as "Step N:" blocks. Each subtask's result is
// delivered to the next subtask's worker before it runs, so downstream
// workers can consume upstream output from their mailbox.
func (s *Supervisor) Process(ctx context.Context, task string) (string, error) {
	s.logger.Info("%s: coordinating task: %q", s.name, task)

	subtasks := s.DecomposeTask(task)
	var results []string
	for i, sub := range subtasks {
		w := s.findWorkerByRole(sub.Role)
		if w == nil {
			s.logger.Warn("%s: no worker found for role %s", s.name, sub.Role)
			continue
		}

		s.logger.Info("%s: assigning to %s: %s", s.name, w.Name(), sub.Task)
		result, err := w.Process(ctx, sub.Task)
		if err != nil {
			return "", fmt.Errorf("worker %s failed on %q: %w", w.Name(), sub.Task, err)
		}
		results = append(results, result)

		if next := s.nextWorker(subtasks, i); next != nil {
			msg := NewMessage(w.Name(), next.Name(), resultType(sub.Role), result)
			next.Mailbox().Deliver(msg)
		}
	}

	var sb strings.Builder
	for i, r := range results {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "Step %d: %s", i+1, r)
	}
	s.logger.Info("%s: task completed", s.name)
	return sb.String(), nil
}

func (s *Supervisor) findWorkerByRole(role Role) Worker {
	for _, w := range s.workers {
		if w.Role() == role {
			return w
		}
	}
	return nil
}

func (s *Supervisor) nextWorker(subtasks []Subtask, i int) Worker {
	if i+1 >= len(subtasks) {
		return nil
	}
	return s.findWorkerByRole(subtasks[i+1].Role)
}

// resultType names the message type carrying a role's output.
func resultType(role Role) string {
	if role == RoleResearcher {
		return "research_result"
	}
	return string(role) + "_result"
}

// ErrNoSupervisor is returned by a System without a registered supervisor.
var ErrNoSupervisor = errors.New("no supervisor agent available")

// System owns a supervisor and its workers and runs tasks end to end.
type System struct {
	supervisor *Supervisor
	workers    []Worker
	logger     log.Logger
	recorder   *sessionRecorder
}

// SystemOption configures a System.
type SystemOption func(*System)

// WithSystemLogger sets the logger used by the system and its supervisor.
func WithSystemLogger(logger log.Logger) SystemOption {
	return func(s *System) {
		s.logger = logger
	}
}

// WithSystemSession records each executed task to the given store.
func WithSystemSession(st store.SessionStore, sessionID string) SystemOption {
	return func(s *System) {
		s.recorder = newSessionRecorder(st, sessionID, s.logger)
	}
}

// NewSystem creates a system around the given supervisor and workers; the
// workers are registered with the supervisor.
func NewSystem(supervisor *Supervisor, workers []Worker, opts ...SystemOption) *System {
	s := &System{
		supervisor: supervisor,
		workers:    workers,
		logger:     log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if supervisor != nil {
		for _, w := range workers {
			supervisor.RegisterWorker(w)
		}
	}
	return s
}

// NewDefaultSystem wires a supervisor with the four standard workers.
func NewDefaultSystem(opts ...SystemOption) *System {
	sup := NewSupervisor(nil)
	workers := []Worker{NewResearcher(), NewWriter(), NewReviewer(), NewExecutor()}
	return NewSystem(sup, workers, opts...)
}

// Workers returns the registered workers.
func (s *System) Workers() []Worker {
	return s.workers
}

// ExecuteTask runs a task through the supervisor.
func (s *System) ExecuteTask(ctx context.Context, task string) (string, error) {
	if s.supervisor == nil {
		return "", ErrNoSupervisor
	}
	result, err := s.supervisor.Process(ctx, task)
	if err != nil {
		return "", err
	}
	s.recorder.record(ctx, s.supervisor.Name(), task, result, map[string]any{
		"workers": len(s.workers),
	})
	return result, nil
}
