// Package address normalizes mailbox values into the flat string form that
// transactional mail APIs expect.
//
// A field such as "to" may arrive as a pre-formatted string, a single
// name/address object, or a list mixing both. Value models that as a tagged
// union and Normalize collapses it:
//
//	address.Normalize(address.Object(address.Address{Name: "Alice", Address: "alice@example.com"}))
//	// "Alice <alice@example.com>"
//
//	address.Normalize(address.List(
//		address.Named("Bob", "bob@example.com"),
//		address.Raw("carol@example.com"),
//		address.Bare(""), // no address, dropped
//	))
//	// "Bob <bob@example.com>,carol@example.com"
//
// An empty display name renders as the bare address. Entries without an
// address are skipped silently; nothing is validated beyond that.
//
// Value implements json.Unmarshaler, so generic JSON payloads decode
// straight into it.
package address
