package source

import (
	"strconv"
	"strings"
)

// Quality is the vertical resolution of a stream, or QualityUnknown.
type Quality int

const (
	QualityUnknown Quality = 0
	Quality144     Quality = 144
	Quality240     Quality = 240
	Quality360     Quality = 360
	Quality480     Quality = 480
	Quality720     Quality = 720
	Quality1080    Quality = 1080
	Quality1440    Quality = 1440
	Quality2160    Quality = 2160
)

// QualityFromName infers a quality from labels like "720p", "1080P", "4k" or "HD".
func QualityFromName(name string) Quality {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return QualityUnknown
	}

	switch name {
	case "4k", "uhd":
		return Quality2160
	case "2k":
		return Quality1440
	case "fhd", "fullhd":
		return Quality1080
	case "hd":
		return Quality720
	case "sd":
		return Quality480
	}

	n, err := strconv.Atoi(strings.TrimSuffix(name, "p"))
	if err != nil || n <= 0 {
		return QualityUnknown
	}
	return Quality(n)
}

func (q Quality) String() string {
	if q == QualityUnknown {
		return "unknown"
	}
	return strconv.Itoa(int(q)) + "p"
}
