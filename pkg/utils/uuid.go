package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// SessionIDLength é o tamanho dos identificadores de sessão
const SessionIDLength = 16

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, SessionIDLength)
}
