// Package chat drives the per-session conversation: classifying utterances as
// ID lookups, fetch commands, complaint-filing dialogue steps or general
// questions, and dispatching to the complaint API or the knowledge pipeline.
package chat

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/grievance-labs/complaintbot/internal/domain"
)

// complaintIDPattern matches a bare complaint identifier: exactly eight
// letters or digits.
var complaintIDPattern = regexp.MustCompile(`^[A-Za-z0-9]{8}$`)

var filingTriggers = []string{
	"register a complaint",
	"new complaint",
	"raise a complaint",
	"log a complaint",
}

const degradedAnswer = "Sorry, the assistant is unavailable right now. Please try again later."

// ComplaintAPI is the controller-facing subset of the complaint service.
type ComplaintAPI interface {
	Create(ctx context.Context, req *domain.CreateComplaintRequest) (*domain.CreateComplaintResponse, error)
	Get(ctx context.Context, id string) (*domain.Complaint, error)
}

// Answerer answers free-form questions against the knowledge base.
type Answerer interface {
	Answer(ctx context.Context, question string) (string, error)
}

// Controller classifies utterances and drives the filing state machine. It is
// stateless itself; all per-client state lives in the Session passed in, so
// one controller serves concurrent sessions.
type Controller struct {
	api      ComplaintAPI
	answerer Answerer
	logger   *zap.Logger
}

// NewController creates a controller. answerer may be nil when the knowledge
// pipeline failed to start; questions then get a degraded response while
// complaint operations keep working.
func NewController(api ComplaintAPI, answerer Answerer, logger *zap.Logger) *Controller {
	return &Controller{api: api, answerer: answerer, logger: logger}
}

// Handle processes one utterance for the given session and returns the reply.
func (c *Controller) Handle(ctx context.Context, session *Session, input string) string {
	input = strings.TrimSpace(input)
	session.append("user", input)

	var reply string
	if session.State != StateIdle {
		reply = c.collect(ctx, session, input)
	} else {
		reply = c.classify(ctx, session, input)
	}

	session.append("assistant", reply)
	return reply
}

// classify routes an utterance while no filing dialogue is in progress. An
// 8-character alphanumeric utterance is always an ID lookup, even when it
// happens to contain a filing trigger substring.
func (c *Controller) classify(ctx context.Context, session *Session, input string) string {
	lower := strings.ToLower(input)

	switch {
	case complaintIDPattern.MatchString(input):
		return c.lookup(ctx, strings.ToUpper(input))

	case strings.HasPrefix(lower, "fetch"):
		parts := strings.Fields(input)
		if len(parts) < 2 {
			return "Please provide a complaint ID. Usage: fetch <complaint_id>"
		}
		return c.lookup(ctx, strings.ToUpper(parts[1]))

	case lower == "file" || containsTrigger(lower):
		session.State = StateCollectingName
		return "Sure, I can help you file a complaint. What is your name?"

	default:
		return c.answer(ctx, input)
	}
}

// collect advances the filing dialogue one field at a time; the details step
// submits the accumulated draft and returns the session to idle.
func (c *Controller) collect(ctx context.Context, session *Session, input string) string {
	switch session.State {
	case StateCollectingName:
		session.Draft.Name = input
		session.State = StateCollectingPhone
		return "What is your phone number?"

	case StateCollectingPhone:
		session.Draft.PhoneNumber = input
		session.State = StateCollectingEmail
		return "What is your email address?"

	case StateCollectingEmail:
		session.Draft.Email = input
		session.State = StateCollectingDetails
		return "Please describe your complaint."

	case StateCollectingDetails:
		session.Draft.ComplaintDetails = input
		draft := session.Draft
		session.resetDraft()
		return c.submit(ctx, &draft)

	default:
		session.resetDraft()
		return degradedAnswer
	}
}

func (c *Controller) submit(ctx context.Context, draft *domain.CreateComplaintRequest) string {
	resp, err := c.api.Create(ctx, draft)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			var b strings.Builder
			b.WriteString("Your complaint could not be filed:")
			for field, msg := range verr.Fields {
				fmt.Fprintf(&b, "\n- %s: %s", field, msg)
			}
			return b.String()
		case errors.Is(err, domain.ErrUnavailable):
			return "Could not reach the complaint service. Please try again later."
		default:
			c.logger.Error("failed to file complaint", zap.Error(err))
			return "Failed to file your complaint. Please try again later."
		}
	}
	return fmt.Sprintf("%s Your complaint ID is %s.", resp.Message, resp.ComplaintID)
}

func (c *Controller) lookup(ctx context.Context, id string) string {
	complaint, err := c.api.Get(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return fmt.Sprintf("Complaint %s was not found.", id)
		case errors.Is(err, domain.ErrUnavailable):
			return "Could not reach the complaint service. Please try again later."
		default:
			c.logger.Error("failed to fetch complaint", zap.Error(err))
			return "Failed to fetch the complaint. Please try again later."
		}
	}
	return formatComplaint(complaint)
}

func (c *Controller) answer(ctx context.Context, question string) string {
	if c.answerer == nil {
		return degradedAnswer
	}
	answer, err := c.answerer.Answer(ctx, question)
	if err != nil {
		c.logger.Warn("knowledge pipeline failed", zap.Error(err))
		return degradedAnswer
	}
	return answer
}

func containsTrigger(lower string) bool {
	for _, t := range filingTriggers {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

func formatComplaint(c *domain.Complaint) string {
	return fmt.Sprintf(
		"Complaint %s\nName: %s\nPhone: %s\nEmail: %s\nDetails: %s\nFiled at: %s",
		c.ComplaintID, c.Name, c.PhoneNumber, c.Email, c.ComplaintDetails, c.CreatedAt)
}
