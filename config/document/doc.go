// Package document defines the generic tree produced by parsing a
// configuration document.
//
// A parsed document is a tree of Node values. Every node carries a Kind and
// the value fields that kind uses; the remaining fields stay at their zero
// values. The zero Node has KindBadValue, which is also what lookups return
// for keys that do not exist, so callers can treat "absent" and "never
// parsed" uniformly.
//
// Nodes render to a stable single-line form via String, which is what
// validation messages embed:
//
//	document.Node{Kind: document.KindString, Str: "yooo"}.String() // String("yooo")
//
// The tree is deliberately small: it models exactly the value kinds a YAML or
// JSON document can contain, keeps mapping entries in document order, and
// offers one lookup helper. Anything smarter belongs to the packages that
// consume it.
package document
