/*
Package document translates DynamoDB items between key space and attribute space.

Items read from the store use document keys; application code and hydrators work
with attribute names. A Translator walks a map and its dependencies to rename the
fields of an item, including embedded documents (M values) and collections of
embedded documents (L values holding M values):

	tr := document.NewTranslator(document.WithStrict(true))

	attrs, err := tr.Decode(userMap, out.Item)   // map[string]any by attribute
	item, err := tr.Encode(userMap, attrs)       // map[string]types.AttributeValue by key

Fields with no mapping are dropped, or rejected with an UnmappedKeyError when the
translator is strict.
*/
package document
