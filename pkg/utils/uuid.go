package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// GenerateSuggestionID gera um identificador maior para sugestões, que são criadas em volume
func GenerateSuggestionID() (string, error) {
	return gonanoid.Generate(characters, 12)
}
