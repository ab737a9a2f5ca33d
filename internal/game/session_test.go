package game

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

// scriptedResponder replays a fixed list of replies and records every
// conversation it was shown. errAt fails the call with that index
// (0-based across the whole game); -1 disables it.
type scriptedResponder struct {
	replies []string
	errAt   int
	err     error
	calls   int
	convs   []Conversation
}

func newScriptedResponder(replies ...string) *scriptedResponder {
	return &scriptedResponder{replies: replies, errAt: -1}
}

func (s *scriptedResponder) Name() string { return "scripted" }

func (s *scriptedResponder) Respond(_ context.Context, conv Conversation) (string, error) {
	snapshot := make(Conversation, len(conv))
	copy(snapshot, conv)
	s.convs = append(s.convs, snapshot)

	idx := s.calls
	s.calls++

	if idx == s.errAt {
		return "", s.err
	}
	if idx < len(s.replies) {
		return s.replies[idx], nil
	}
	return s.replies[len(s.replies)-1], nil
}

func newTestSession(r Responder, numberRange, maxRepairs int) *Session {
	return NewSession(r, SessionConfig{
		NumberRange: numberRange,
		MaxRepairs:  maxRepairs,
		Rand:        rand.New(rand.NewSource(1)),
	})
}

func TestPlayFirstGuessCorrect(t *testing.T) {
	responder := newScriptedResponder("Okay, I have a number.", "correct")
	outcome, err := newTestSession(responder, 10, 5).Play(context.Background())
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if outcome.Status != StatusSuccess {
		t.Errorf("Status = %v, want StatusSuccess", outcome.Status)
	}
	if outcome.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", outcome.Attempts)
	}
	if outcome.Repairs != 0 {
		t.Errorf("Repairs = %d, want 0", outcome.Repairs)
	}
}

func TestPlaySuccessAfterNegatives(t *testing.T) {
	responder := newScriptedResponder("Okay.", "not correct", "not correct", "correct")
	outcome, err := newTestSession(responder, 5, 5).Play(context.Background())
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if outcome.Status != StatusSuccess || outcome.Attempts != 3 {
		t.Errorf("outcome = %+v, want success on attempt 3", outcome)
	}
}

func TestPlayExhausted(t *testing.T) {
	responder := newScriptedResponder("Okay.", "not correct")
	outcome, err := newTestSession(responder, 3, 5).Play(context.Background())
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if outcome.Status != StatusExhausted {
		t.Errorf("Status = %v, want StatusExhausted", outcome.Status)
	}
	if outcome.Attempts != 0 {
		t.Errorf("Attempts = %d, want 0 for an exhausted game", outcome.Attempts)
	}
	// Setup call plus one call per number in the range.
	if responder.calls != 4 {
		t.Errorf("responder calls = %d, want 4", responder.calls)
	}
}

func TestPlayRepairThenAffirmative(t *testing.T) {
	responder := newScriptedResponder("Okay.", "Hmm, let me think...", "correct")
	outcome, err := newTestSession(responder, 10, 5).Play(context.Background())
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if outcome.Status != StatusSuccess || outcome.Attempts != 1 {
		t.Errorf("outcome = %+v, want success on attempt 1", outcome)
	}
	if outcome.Repairs != 1 {
		t.Errorf("Repairs = %d, want 1", outcome.Repairs)
	}

	// The third request must carry the correction as its newest user turn.
	last, ok := responder.convs[2].LastUser()
	if !ok || last != correctionPrompt {
		t.Errorf("last user turn = %q, want the correction prompt", last)
	}
}

func TestPlayRepairConsumesNoGuess(t *testing.T) {
	responder := newScriptedResponder("Okay.",
		"what?", "not correct", // guess 1: repaired, then negative
		"not correct", // guess 2
		"correct",     // guess 3
	)
	outcome, err := newTestSession(responder, 3, 5).Play(context.Background())
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if outcome.Status != StatusSuccess || outcome.Attempts != 3 {
		t.Errorf("outcome = %+v, want success on attempt 3", outcome)
	}

	// Every number in the range must have been guessed exactly once
	// despite the repair turn.
	final := responder.convs[len(responder.convs)-1]
	seen := map[int]int{}
	for _, turn := range final {
		if turn.Role != RoleUser {
			continue
		}
		if n, err := strconv.Atoi(turn.Content); err == nil {
			seen[n]++
		}
	}
	for n := 1; n <= 3; n++ {
		if seen[n] != 1 {
			t.Errorf("guess %d made %d times, want exactly once", n, seen[n])
		}
	}
}

func TestPlayRepairBudgetExhausted(t *testing.T) {
	responder := newScriptedResponder("Okay.", "no idea what you mean")
	outcome, err := newTestSession(responder, 10, 2).Play(context.Background())
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if outcome.Status != StatusProtocolFailure {
		t.Errorf("Status = %v, want StatusProtocolFailure", outcome.Status)
	}
	if outcome.Repairs != 2 {
		t.Errorf("Repairs = %d, want 2 issued corrections", outcome.Repairs)
	}
	// Setup, guess, and exactly MaxRepairs corrections.
	if responder.calls != 4 {
		t.Errorf("responder calls = %d, want 4", responder.calls)
	}
}

func TestPlayUnboundedRepair(t *testing.T) {
	responder := newScriptedResponder("Okay.",
		"??", "??", "??", "??", "??", "??", "??", "correct")
	outcome, err := newTestSession(responder, 10, 0).Play(context.Background())
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if outcome.Status != StatusSuccess || outcome.Attempts != 1 {
		t.Errorf("outcome = %+v, want success on attempt 1", outcome)
	}
	if outcome.Repairs != 7 {
		t.Errorf("Repairs = %d, want 7", outcome.Repairs)
	}
}

func TestPlaySetupError(t *testing.T) {
	responder := newScriptedResponder("unused")
	responder.errAt = 0
	responder.err = errors.New("connection refused")

	_, err := newTestSession(responder, 10, 5).Play(context.Background())
	if err == nil {
		t.Fatal("Play() error = nil, want setup failure")
	}
	if !strings.Contains(err.Error(), "game setup") {
		t.Errorf("error = %v, want game setup context", err)
	}
	if !errors.Is(err, responder.err) {
		t.Errorf("error chain does not include the transport error")
	}
}

func TestPlayTransportErrorMidGame(t *testing.T) {
	responder := newScriptedResponder("Okay.", "not correct")
	responder.errAt = 2
	responder.err = errors.New("connection reset")

	_, err := newTestSession(responder, 10, 5).Play(context.Background())
	if err == nil {
		t.Fatal("Play() error = nil, want transport failure")
	}
	if !strings.Contains(err.Error(), "attempt 2") {
		t.Errorf("error = %v, want attempt 2 context", err)
	}
	if !errors.Is(err, responder.err) {
		t.Errorf("error chain does not include the transport error")
	}
}

func TestPlaySetupPromptOpensConversation(t *testing.T) {
	responder := newScriptedResponder("Okay.", "correct")
	if _, err := newTestSession(responder, 7, 5).Play(context.Background()); err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	first := responder.convs[0]
	if len(first) != 1 || first[0].Role != RoleUser {
		t.Fatalf("setup conversation = %+v, want a single user turn", first)
	}
	if !strings.HasPrefix(first[0].Content, SetupSentinel) {
		t.Errorf("setup prompt does not start with the sentinel: %q", first[0].Content)
	}
	if !strings.Contains(first[0].Content, "1 to 7") {
		t.Errorf("setup prompt does not mention the range: %q", first[0].Content)
	}
}

func TestNewGuessSequence(t *testing.T) {
	for _, n := range []int{1, 3, 10, 25} {
		rng := rand.New(rand.NewSource(42))
		seq := newGuessSequence(rng, n)
		if len(seq) != n {
			t.Fatalf("len(newGuessSequence(%d)) = %d, want %d", n, len(seq), n)
		}
		seen := make(map[int]bool, n)
		for _, g := range seq {
			if g < 1 || g > n {
				t.Errorf("guess %d out of range [1, %d]", g, n)
			}
			if seen[g] {
				t.Errorf("guess %d repeated in sequence for n=%d", g, n)
			}
			seen[g] = true
		}
	}
}

func TestConversationLastUser(t *testing.T) {
	conv := Conversation{
		{Role: RoleUser, Content: "first"},
		{Role: RoleAssistant, Content: "reply"},
		{Role: RoleUser, Content: "second"},
		{Role: RoleAssistant, Content: "reply"},
	}
	if got, ok := conv.LastUser(); !ok || got != "second" {
		t.Errorf("LastUser() = %q, %v; want %q, true", got, ok, "second")
	}

	empty := Conversation{{Role: RoleAssistant, Content: "hi"}}
	if _, ok := empty.LastUser(); ok {
		t.Error("LastUser() on assistant-only conversation reported a user turn")
	}
}
