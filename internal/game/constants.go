package game

// Title is the display name of the game.
const Title = "Chat Noir"

// StartingBlockers is the number of blockers scattered at the start of a game.
const StartingBlockers = 11

// Status messages
const (
	MsgCatsTurn   = "It's the cat's turn to move!"
	MsgOwnersTurn = "It's the owner's turn to move!"
	MsgCatWins    = "Game over. The cat wins!"
	MsgOwnerWins  = "Game over. The owner wins!"
)
