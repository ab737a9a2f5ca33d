package providers

import (
	"context"
	"math/rand"
	"strconv"
	"testing"

	"github.com/urban-eriksson/LLM-guessing-game/internal/game"
)

func setupConv() game.Conversation {
	return game.Conversation{{Role: game.RoleUser, Content: game.SetupSentinel + " Think of a number."}}
}

func TestControlResponderProtocol(t *testing.T) {
	ctrl := NewControlResponder(10, rand.New(rand.NewSource(3)))
	ctx := context.Background()

	conv := setupConv()
	reply, err := ctrl.Respond(ctx, conv)
	if err != nil {
		t.Fatalf("setup Respond() error = %v", err)
	}
	// The free-form setup acknowledgement must not collide with either
	// protocol token.
	if game.Classify(reply) != game.Malformed {
		t.Errorf("setup reply %q parses as a protocol token", reply)
	}

	// Exactly one guess in [1, 10] is confirmed, all others denied.
	affirmed := 0
	for guess := 1; guess <= 10; guess++ {
		probe := append(conv, game.Turn{Role: game.RoleUser, Content: strconv.Itoa(guess)})
		reply, err := ctrl.Respond(ctx, probe)
		if err != nil {
			t.Fatalf("guess Respond() error = %v", err)
		}
		switch game.Classify(reply) {
		case game.Affirmative:
			affirmed++
		case game.Negative:
		default:
			t.Errorf("guess %d got malformed reply %q", guess, reply)
		}
	}
	if affirmed != 1 {
		t.Errorf("confirmed %d guesses, want exactly 1", affirmed)
	}
}

func TestControlResponderNewSecretPerSetup(t *testing.T) {
	ctrl := NewControlResponder(50, rand.New(rand.NewSource(9)))
	ctx := context.Background()

	secrets := map[int]bool{}
	for round := 0; round < 20; round++ {
		if _, err := ctrl.Respond(ctx, setupConv()); err != nil {
			t.Fatal(err)
		}
		for guess := 1; guess <= 50; guess++ {
			probe := append(setupConv(), game.Turn{Role: game.RoleUser, Content: strconv.Itoa(guess)})
			reply, err := ctrl.Respond(ctx, probe)
			if err != nil {
				t.Fatal(err)
			}
			if game.Classify(reply) == game.Affirmative {
				secrets[guess] = true
			}
		}
	}

	// 20 draws from [1, 50] repeating every time would mean a stuck rng.
	if len(secrets) < 2 {
		t.Errorf("secret never changed across setups: %v", secrets)
	}
}

func TestControlResponderNonNumericGuess(t *testing.T) {
	ctrl := NewControlResponder(5, rand.New(rand.NewSource(1)))
	conv := append(setupConv(), game.Turn{Role: game.RoleUser, Content: "is it three?"})

	if _, err := ctrl.Respond(context.Background(), setupConv()); err != nil {
		t.Fatal(err)
	}
	reply, err := ctrl.Respond(context.Background(), conv)
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if reply != "not correct" {
		t.Errorf("non-numeric guess reply = %q, want %q", reply, "not correct")
	}
}

func TestControlResponderFullGame(t *testing.T) {
	ctrl := NewControlResponder(10, rand.New(rand.NewSource(5)))
	session := game.NewSession(ctrl, game.SessionConfig{
		NumberRange: 10,
		MaxRepairs:  5,
		Rand:        rand.New(rand.NewSource(11)),
	})

	outcome, err := session.Play(context.Background())
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if outcome.Status != game.StatusSuccess {
		t.Fatalf("Status = %v, want StatusSuccess", outcome.Status)
	}
	if outcome.Attempts < 1 || outcome.Attempts > 10 {
		t.Errorf("Attempts = %d, want within [1, 10]", outcome.Attempts)
	}
	if outcome.Repairs != 0 {
		t.Errorf("Repairs = %d, want 0 for a conforming responder", outcome.Repairs)
	}
}

func TestControlResponderIdentity(t *testing.T) {
	ctrl := NewControlResponder(10, nil)
	if ctrl.Name() != "control" {
		t.Errorf("Name() = %q, want control", ctrl.Name())
	}
	if ModelName(ctrl) != "control" {
		t.Errorf("ModelName() = %q, want control", ModelName(ctrl))
	}
}
