/*
Package coin defines the fungible value used for listing prices, payments
and seller proceeds.

A Coin is a fixed point number with a whole part and a fractional part
expressed in 10^-9 units, tagged with a currency ticker. Coins is a
normalized, sorted set with at most one Coin per ticker.
*/
package coin
