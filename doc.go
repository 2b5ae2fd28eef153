/*
Package bazaar defines the interfaces shared by every part of the exchange
application: storage, transactions, handlers and decorators, conditions and
addresses, and the helpers that carry block information in the context.

Extensions live under x/ and are wired together by the app package. Look into
this package first to get an overview of the building blocks.
*/
package bazaar
