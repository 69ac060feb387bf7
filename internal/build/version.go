package build

// Set at link time with -ldflags "-X github.com/bornholm/lifemap/internal/build.ShortVersion=..."
var (
	ShortVersion = "unknown"
	LongVersion  = "unknown"
)

func UserAgent() string {
	return "lifemap/" + ShortVersion
}
