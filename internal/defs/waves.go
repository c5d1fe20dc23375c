package defs

// KindWeight - запись взвешенной таблицы видов зомби для волны.
type KindWeight struct {
	Kind   PursuerKind `json:"kind"`
	Weight int         `json:"weight"`
}

// WaveDefinition описывает параметры одной волны.
type WaveDefinition struct {
	Count       int          `json:"count"`        // сколько зомби в волне
	ArenaWidth  int          `json:"arena_width"`  // 0 - размер из Tuning
	ArenaHeight int          `json:"arena_height"` // 0 - размер из Tuning
	Kinds       []KindWeight `json:"kinds"`
}

// WavePatterns определяет последовательность волн. Ключ - номер волны.
var WavePatterns = map[int]WaveDefinition{
	1: {Count: 10, Kinds: []KindWeight{{KindChaser, 1}, {KindBloater, 1}, {KindCrawler, 1}}},
	2: {Count: 12, Kinds: []KindWeight{{KindChaser, 2}, {KindBloater, 1}, {KindCrawler, 1}}},
	3: {Count: 15, Kinds: []KindWeight{{KindChaser, 2}, {KindBloater, 2}, {KindCrawler, 1}}},
	4: {Count: 18, Kinds: []KindWeight{{KindChaser, 3}, {KindBloater, 1}, {KindCrawler, 1}}},
	5: {Count: 24, Kinds: []KindWeight{{KindChaser, 3}, {KindBloater, 2}, {KindCrawler, 2}}},
}

// WaveFor returns the definition for wave n. Waves past the table repeat the
// last entry with two more zombies per extra wave.
func WaveFor(patterns map[int]WaveDefinition, n int) WaveDefinition {
	if def, ok := patterns[n]; ok {
		return def
	}
	last := 0
	for k := range patterns {
		if k > last && k < n {
			last = k
		}
	}
	def, ok := patterns[last]
	if !ok {
		return WaveDefinition{Count: 10, Kinds: []KindWeight{{KindChaser, 1}}}
	}
	def.Count += 2 * (n - last)
	return def
}
