// Package words provides word-list management for the hangman game.
//
// The words package handles:
//   - Loading word lists embedded in the binary
//   - Loading additional word lists from JSON files in a directory
//   - Word-list validation
//   - Default list management and list discovery
//
// List Format:
//
// Word lists are JSON documents:
//
//	{
//	  "name": "Fruits",
//	  "description": "The classic fruit basket",
//	  "words": ["apple", "banana", "pear"]
//	}
//
// A list is identified by its file name without the .json extension. Files in
// the optional directory shadow embedded lists with the same identifier.
//
// Available Lists:
//   - fruits: the six classic fruit words (default)
//   - animals: sixteen animal names
//   - tech: sixteen computing terms
//
// Usage:
//
//	catalog, err := words.NewCatalog("")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	list, err := catalog.LoadList("animals")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	lists, err := catalog.ListLists()
//
// Validation:
//
// Every list must have a name and at least one word, and every word must be
// made of letters only. Invalid lists are rejected with ErrInvalidList, which
// also matches engine.ErrInvalidConfiguration.
package words
