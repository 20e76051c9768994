package turn

// Canned replies for degraded turns. These replace the oracle's text when the
// turn cannot be trusted, so they must read like something the interviewer
// would naturally say.
const (
	// RecollectReply is used when a summary promised data the turn could not
	// attach or recover. Staying and re-asking beats advancing with nothing.
	RecollectReply = "Let me make sure I have everything noted down correctly. Could you briefly restate the key points we just discussed?"

	// ApologyReply is used when the oracle call itself failed. The turn ends
	// on the same section and waits for the user to try again.
	ApologyReply = "I'm sorry, I ran into a hiccup processing that. Could you say that again?"

	// SaveUncertainReply is appended when a save did not go through. The
	// reply must not claim the information was stored.
	SaveUncertainReply = "I noted that down, but I couldn't confirm it was saved just now. I'll try again with your next message."
)
