package local

// valences holds per-word sentiment weights on a roughly [-4, 4] scale,
// trimmed to vocabulary that shows up in product feedback.
var valences = map[string]float64{
	// positive
	"amazing":      3.3,
	"awesome":      3.1,
	"beautiful":    2.7,
	"best":         3.2,
	"better":       1.9,
	"bonus":        1.6,
	"brilliant":    3.0,
	"clean":        1.7,
	"clear":        1.5,
	"convenient":   1.8,
	"cool":         1.8,
	"delightful":   2.9,
	"easy":         1.9,
	"effective":    1.9,
	"efficient":    1.9,
	"enjoy":        2.0,
	"enjoyable":    2.2,
	"excellent":    3.2,
	"fantastic":    3.2,
	"fast":         1.6,
	"favorite":     2.3,
	"fine":         0.8,
	"fixed":        1.4,
	"flawless":     3.0,
	"fluid":        1.5,
	"friendly":     1.9,
	"fun":          2.1,
	"glad":         1.9,
	"good":         1.9,
	"great":        3.1,
	"happy":        2.7,
	"helpful":      1.9,
	"impressed":    2.3,
	"impressive":   2.4,
	"improved":     1.8,
	"intuitive":    2.0,
	"like":         1.5,
	"love":         3.2,
	"loved":        2.9,
	"nice":         1.8,
	"ok":           0.5,
	"okay":         0.5,
	"perfect":      3.0,
	"pleasant":     2.0,
	"pleased":      2.1,
	"polished":     1.9,
	"powerful":     1.7,
	"recommend":    2.1,
	"reliable":     2.0,
	"responsive":   1.7,
	"satisfied":    2.0,
	"seamless":     2.1,
	"simple":       1.3,
	"slick":        1.8,
	"smooth":       1.7,
	"solid":        1.6,
	"stable":       1.6,
	"superb":       3.1,
	"thanks":       1.7,
	"useful":       1.8,
	"wonderful":    2.9,
	"works":        1.2,
	"worth":        1.4,

	// negative
	"annoying":      -2.0,
	"awful":         -3.1,
	"bad":           -2.5,
	"broken":        -2.4,
	"buggy":         -2.4,
	"bugs":          -1.9,
	"bug":           -1.7,
	"clunky":        -1.9,
	"confusing":     -1.9,
	"crash":         -2.2,
	"crashed":       -2.2,
	"crashes":       -2.2,
	"crashing":      -2.3,
	"difficult":     -1.7,
	"disappointed":  -2.2,
	"disappointing": -2.3,
	"error":         -1.6,
	"errors":        -1.8,
	"fail":          -2.3,
	"failed":        -2.3,
	"fails":         -2.3,
	"freeze":        -1.9,
	"freezes":       -2.0,
	"frozen":        -1.9,
	"frustrated":    -2.3,
	"frustrating":   -2.4,
	"garbage":       -2.8,
	"glitch":        -1.8,
	"glitchy":       -2.0,
	"hate":          -2.9,
	"horrible":      -3.0,
	"impossible":    -1.9,
	"lag":           -1.7,
	"laggy":         -1.9,
	"lags":          -1.7,
	"lost":          -1.4,
	"meh":           -0.6,
	"mess":          -1.9,
	"missing":       -1.3,
	"painful":       -2.1,
	"poor":          -2.1,
	"problem":       -1.6,
	"problems":      -1.8,
	"refund":        -1.5,
	"sad":           -1.9,
	"slow":          -1.6,
	"stuck":         -1.6,
	"terrible":      -3.0,
	"trash":         -2.6,
	"ugly":          -2.1,
	"unreliable":    -2.1,
	"unstable":      -2.0,
	"unusable":      -2.7,
	"useless":       -2.4,
	"waste":         -2.2,
	"worse":         -2.3,
	"worst":         -3.2,
	"wrong":         -1.7,
}

// negators flip the valence of the words that follow them.
var negators = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"neither": true,
	"nor":     true,
	"cannot":  true,
	"cant":    true,
	"can't":   true,
	"dont":    true,
	"don't":   true,
	"doesnt":  true,
	"doesn't": true,
	"didnt":   true,
	"didn't":  true,
	"isnt":    true,
	"isn't":   true,
	"wasnt":   true,
	"wasn't":  true,
	"wont":    true,
	"won't":   true,
	"without": true,
}

// boosters scale the valence of the next sentiment-bearing word.
var boosters = map[string]float64{
	"absolutely": 0.3,
	"completely": 0.3,
	"extremely":  0.3,
	"incredibly": 0.3,
	"really":     0.25,
	"so":         0.2,
	"super":      0.25,
	"totally":    0.25,
	"very":       0.25,

	"barely":   -0.3,
	"hardly":   -0.3,
	"kinda":    -0.25,
	"slightly": -0.3,
	"somewhat": -0.25,
}
