package board

import "math/rand/v2"

var Quotes = []string{
	"Your only limit is you. Make 2026 legendary!",
	"Dream big. Work hard. Stay focused. 2026 is yours!",
	"Every day is a chance to get closer to your goals.",
	"The best time to start was yesterday. The next best time is now.",
	"Success is the sum of small efforts repeated day in and day out.",
}

func RandomQuote() string {
	return Quotes[rand.IntN(len(Quotes))]
}
