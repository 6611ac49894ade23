package util

type Envelope map[string]any

func Error(message string) Envelope {
	return Envelope{"error": message}
}

// Failure is the error body carrying a stable machine-readable reason next to the message.
func Failure(reason, message string) Envelope {
	return Envelope{"error": message, "reason": reason}
}

func Data(key string, value any) Envelope {
	return Envelope{key: value}
}

func Message(message string) Envelope {
	return Envelope{"message": message}
}
