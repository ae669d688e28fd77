package gen

import "math/rand/v2"

var nameOnsets = []string{
	"Al", "Bar", "Cor", "Dra", "El", "Fen", "Gal", "Hol", "Ist", "Kar",
	"Lor", "Mar", "Nor", "Or", "Pel", "Ros", "Sar", "Tor", "Ul", "Ver",
}

var nameMiddles = []string{
	"", "", "a", "e", "i", "o", "an", "en", "ol", "ar",
}

var nameEndings = []string{
	"adia", "band", "canth", "dor", "eth", "fall", "gard", "heim", "ia", "land",
	"mark", "nia", "on", "rath", "stead", "tia", "vale", "wick", "yr", "moor",
}

// nameFor produces a pronounceable label from the engine RNG. Collisions are
// possible and harmless; labels are for display only.
func nameFor(rng *rand.Rand) string {
	return nameOnsets[rng.IntN(len(nameOnsets))] +
		nameMiddles[rng.IntN(len(nameMiddles))] +
		nameEndings[rng.IntN(len(nameEndings))]
}
