package domain

// DeriveRoomID builds the room id shared by two participants. Both sides
// derive the same id regardless of who initiates the conversation.
func DeriveRoomID(a, b string) string {
	if a > b {
		a, b = b, a
	}

	return a + "_" + b
}
