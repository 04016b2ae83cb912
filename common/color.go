package common

import (
	"github.com/logrusorgru/aurora"
)

func AlertColor(str string) string {
	return aurora.Red(str).String()
}

func InfoColor(str string) string {
	return aurora.Green(str).String()
}

func KindWithColor(kind string) string {
	if kind == "p2sh" {
		return aurora.Yellow(kind).String()
	}
	return InfoColor(kind)
}
