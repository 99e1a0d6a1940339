package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hibiken/asynq"

	"github.com/adamspd/LogicQuiz/models"
	"github.com/adamspd/LogicQuiz/utils"
)

const (
	TypeSendEmail = "email:send"
)

// Mailer delivers one e-mail.
type Mailer interface {
	SendEmail(to, subject, body string) error
}

// WelcomeBuilder renders the welcome e-mail of a new account.
type WelcomeBuilder interface {
	BuildWelcomeEmail(user *models.User) (string, string)
}

type JobManager struct {
	client  *asynq.Client
	server  *asynq.Server
	mux     *asynq.ServeMux
	builder WelcomeBuilder
}

type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Type    string `json:"type"`
}

func NewJobManager(redisURL string, builder WelcomeBuilder) *JobManager {
	redisOpt := asynq.RedisClientOpt{
		Addr: strings.TrimPrefix(redisURL, "redis://"),
	}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 4,
		Queues: map[string]int{
			"default": 1,
		},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			utils.LogError("Job failed: type=%s error=%v", task.Type(), err)
		}),
		Logger: &AsynqLogger{},
	})

	return &JobManager{
		client:  asynq.NewClient(redisOpt),
		server:  server,
		mux:     asynq.NewServeMux(),
		builder: builder,
	}
}

func (jm *JobManager) RegisterHandlers(mailer Mailer) {
	jm.mux.HandleFunc(TypeSendEmail, HandleSendEmail(mailer))
}

// Start launches the worker in the background; Stop shuts it down.
func (jm *JobManager) Start() error {
	utils.LogStartup("Starting job queue worker...")
	return jm.server.Start(jm.mux)
}

func (jm *JobManager) Stop() {
	utils.LogShutdown("Stopping job queue...")
	jm.server.Shutdown()
	jm.client.Close()
}

// QueueWelcomeEmail enqueues the welcome e-mail of a freshly registered user.
func (jm *JobManager) QueueWelcomeEmail(user *models.User) error {
	subject, body := jm.builder.BuildWelcomeEmail(user)
	task, err := NewEmailTask(EmailPayload{To: user.Email, Subject: subject, Body: body, Type: "welcome"})
	if err != nil {
		return err
	}

	info, err := jm.client.Enqueue(task,
		asynq.Queue("default"),
		asynq.MaxRetry(3),
		asynq.Timeout(60*time.Second),
	)
	if err != nil {
		return fmt.Errorf("failed to enqueue email task: %w", err)
	}

	utils.LogInfo("Queued email job: ID=%s type=welcome to=%s", info.ID, user.Email)
	return nil
}

func NewEmailTask(payload EmailPayload) (*asynq.Task, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal email payload: %w", err)
	}
	return asynq.NewTask(TypeSendEmail, payloadBytes), nil
}

func HandleSendEmail(mailer Mailer) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload EmailPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to unmarshal email payload: %w: %w", err, asynq.SkipRetry)
		}

		utils.LogInfo("Processing email job: type=%s to=%s", payload.Type, payload.To)
		if err := mailer.SendEmail(payload.To, payload.Subject, payload.Body); err != nil {
			return fmt.Errorf("failed to send %s email to %s: %w", payload.Type, payload.To, err)
		}
		return nil
	}
}

// InlineNotifier delivers welcome e-mails in the background without a queue.
// It is used when no Redis instance is configured.
type InlineNotifier struct {
	builder WelcomeBuilder
	mailer  Mailer
}

func NewInlineNotifier(builder WelcomeBuilder, mailer Mailer) *InlineNotifier {
	return &InlineNotifier{builder: builder, mailer: mailer}
}

func (n *InlineNotifier) QueueWelcomeEmail(user *models.User) error {
	subject, body := n.builder.BuildWelcomeEmail(user)
	go func() {
		if err := n.mailer.SendEmail(user.Email, subject, body); err != nil {
			utils.LogError("Failed to send welcome email to %s: %v", user.Email, err)
		}
	}()
	return nil
}

// AsynqLogger routes asynq's logs through the process logger.
type AsynqLogger struct{}

func (l *AsynqLogger) Debug(args ...interface{}) {
	utils.LogDebug("%s", fmt.Sprint(args...))
}

func (l *AsynqLogger) Info(args ...interface{}) {
	utils.LogInfo("%s", fmt.Sprint(args...))
}

func (l *AsynqLogger) Warn(args ...interface{}) {
	utils.LogError("%s", fmt.Sprint(args...))
}

func (l *AsynqLogger) Error(args ...interface{}) {
	utils.LogError("%s", fmt.Sprint(args...))
}

func (l *AsynqLogger) Fatal(args ...interface{}) {
	utils.LogFatal("%s", fmt.Sprint(args...))
}
