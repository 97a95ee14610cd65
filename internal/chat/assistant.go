package chat

import (
	"context"
	"time"

	"github.com/laasya2505/kuber-ai-assignment/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// nudgeThreshold is the interest score at which the one-time purchase
// nudge fires.
const nudgeThreshold = 2

const refusalResponse = "I'm sorry, I can only help you with gold investment queries. Would you like to know about the benefits of investing in digital gold?"

const nudgeSuffix = "\n\n💰 Based on our conversation, you seem interested in gold investment! Would you like to purchase some digital gold right now? It's safe, secure, and you can start with as little as ₹100."

type Result struct {
	Response      string
	IsGoldRelated bool
	NudgePurchase bool
	SessionID     string
}

// Assistant is the conversation engine: it owns session state, applies
// the nudge policy and orchestrates the classifier and responder.
type Assistant struct {
	sessions  *SessionStore
	responder *Responder
	db        *gorm.DB // nil disables chat-session snapshots
}

func NewAssistant(responder *Responder, ttl time.Duration, db *gorm.DB) *Assistant {
	return &Assistant{
		sessions:  NewSessionStore(ttl),
		responder: responder,
		db:        db,
	}
}

func (a *Assistant) Sessions() *SessionStore { return a.sessions }

// AnalyzeMessage runs one conversation turn. Sessions are created
// lazily; a fresh id is minted when none is supplied. Concurrent calls
// for the same session serialize on the session lock.
func (a *Assistant) AnalyzeMessage(ctx context.Context, message, sessionID string) Result {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	sess := a.sessions.GetOrCreate(sessionID)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.Messages = append(sess.Messages, Message{Role: "user", Content: message})
	sess.LastActivity = time.Now()

	related := IsInvestmentRelated(message)

	var response string
	if related {
		sess.InterestScore++
		response = a.responder.Respond(ctx, message)
	} else {
		response = refusalResponse
	}

	nudge := sess.InterestScore >= nudgeThreshold && !sess.NudgeSent
	if nudge {
		response += nudgeSuffix
		sess.NudgeSent = true
	}

	sess.Messages = append(sess.Messages, Message{Role: "assistant", Content: response})
	a.snapshot(sessionID, sess)

	return Result{
		Response:      response,
		IsGoldRelated: related,
		NudgePurchase: nudge,
		SessionID:     sessionID,
	}
}

// snapshot persists the session counters to the chat_sessions table.
// Best effort: the in-memory session stays authoritative and a write
// failure never fails the chat turn. Caller holds the session lock.
func (a *Assistant) snapshot(sessionID string, sess *Session) {
	if a.db == nil {
		return
	}
	var cs models.ChatSession
	err := a.db.Where("session_id = ?", sessionID).
		Assign(map[string]interface{}{
			"messages_count":      len(sess.Messages),
			"gold_interest_score": sess.InterestScore,
			"purchase_nudged":     sess.NudgeSent,
			"last_activity":       sess.LastActivity,
		}).
		FirstOrCreate(&cs, models.ChatSession{SessionID: sessionID}).Error
	if err != nil {
		logrus.WithError(err).WithField("session_id", sessionID).Warn("failed to snapshot chat session")
	}
}
