package game

import "fmt"

// SetupSentinel opens every setup prompt. The control responder keys a
// fresh secret number off it.
const SetupSentinel = "Let's play a game!"

// setupPrompt is the opening user turn. It asks the responder to silently
// choose a number and commits it to the two-token protocol for the rest of
// the game.
func setupPrompt(numberRange int) string {
	return SetupSentinel + fmt.Sprintf(` You will think of a number from 1 to %d. I will then try to guess it.

Your task is to respond to my guesses with one of two exact strings:
- 'correct'
- 'not correct'

You must always reply. Under no circumstances should you give an empty or blank response. Do not add any other words or punctuation.

First, think of your number. Let me know you are ready by responding with 'Okay, I have a number.'. Do not reveal the number.`, numberRange)
}

// correctionPrompt is sent whenever a reply fails classification. It is
// fixed text; repair turns never consume a guess from the sequence.
const correctionPrompt = "Please answer with the exact string 'correct' if I guessed right or the exact string 'not correct' if I guessed wrong"
