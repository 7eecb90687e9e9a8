// Copyright (c) 2025 BeefMusic.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth handles bearer tokens and password hashing.

# Tokens

Tokens are HS256 JWTs valid for 7 days, carrying a role plus the user's id
and username:

	token, err := auth.NewUserToken(secret, userID, username)
	claims, err := auth.ParseToken(secret, token)

Admin tokens carry only the admin role; the admin identity is a single
env-configured credential pair, not a stored user.

# Passwords

User passwords are stored as bcrypt hashes (cost 10):

	hash, err := auth.HashPassword(password)
	ok := auth.CheckPassword(hash, password)
*/
package auth
