/*
Package nft implements a minimal registry of non fungible tokens.

Tokens are grouped in collections. A collection admin mints tokens, a token
owner can approve a single other account to transfer the token on their
behalf, and either of them can transfer it. Every transfer clears the
approval.

Other extensions use the Registry directly to check ownership and move
tokens, without sending a message.
*/
package nft
