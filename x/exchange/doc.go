/*
Package exchange implements an escrowed marketplace for non fungible tokens.

An owner lists a token for a fixed price after approving the exchange
account on it. A buyer pays exactly the listing price, the payment is held by
the exchange account and credited to the seller proceeds, and the token is
transferred to the buyer. Sellers withdraw their proceeds explicitly.

The Ledger holds all state transitions. It depends only on an AssetRegistry
and a Bank, so it can be used outside of the message handlers.
*/
package exchange
