package models

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 1000
	pbkdf2KeyLength  = 64
	saltLength       = 16
)

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name" validate:"required"`
	Email string             `bson:"email" json:"email" validate:"required,email"`
	Hash  string             `bson:"hash" json:"-"`
	Salt  string             `bson:"salt" json:"-"`
}

// SetPassword derives a fresh salt and password hash. The plaintext is never stored.
func (u *User) SetPassword(password string) error {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return err
	}

	u.Salt = hex.EncodeToString(salt)
	u.Hash = hex.EncodeToString(pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, pbkdf2KeyLength, sha512.New))
	return nil
}

// ValidPassword reports whether the password matches the stored hash.
func (u *User) ValidPassword(password string) bool {
	salt, err := hex.DecodeString(u.Salt)
	if err != nil {
		return false
	}

	hash := hex.EncodeToString(pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, pbkdf2KeyLength, sha512.New))
	return subtle.ConstantTimeCompare([]byte(hash), []byte(u.Hash)) == 1
}
