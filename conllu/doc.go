// Package conllu provides a CoNLL-U style sentence representation and
// bridges it to the generic layer and lemma capabilities.
//
// A Sentence holds tokens at indices 1..Len()-1 with a synthetic root at
// index 0, the convention dependency treebanks use so that head references
// can point at a real node. The root carries no form or annotation;
// addressing it is a programming error and panics.
//
// Tokens carry the CoNLL-U annotation columns this module operates on: the
// surface form, lemma, universal and language-specific part-of-speech tags,
// a morphological feature map and a miscellaneous map. Features and Misc
// round-trip with the CoNLL-U column syntax: entries joined by "|", keys and
// values separated by "=", and "_" marking an empty map.
package conllu
