package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ngrash/go-tzone/internal/epochhour"
	"github.com/ngrash/go-tzone/tzdesc"
	"github.com/ngrash/go-tzone/tzone"
)

var atFlag = flag.String("at", "", "Resolve this instant, RFC 3339 or Unix seconds (default: now)")

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) != 1 {
		fmt.Println("Usage: tzoneinfo [-at <instant>] <descriptor file>")
		os.Exit(1)
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Println("reading file:", err)
		os.Exit(1)
	}

	d, err := tzdesc.Decode(bytes.NewReader(b))
	if err != nil {
		fmt.Println("decoding:", err)
		os.Exit(1)
	}

	z, err := tzone.New(d)
	if err != nil {
		fmt.Println("constructing zone:", err)
		os.Exit(1)
	}

	at, err := parseInstant(*atFlag)
	if err != nil {
		fmt.Println("parsing -at:", err)
		os.Exit(1)
	}

	printDescriptor(d)
	printResolution(z, at)
}

func parseInstant(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(sec, 0).UTC(), nil
	}
	return time.Parse(time.RFC3339, s)
}

func printDescriptor(d tzdesc.Descriptor) {
	fmt.Println("Zone", d.ID)
	fmt.Println("  std_offset =", d.StdOffset)
	fmt.Println("  standard =", d.Names.Standard.Short, "/", d.Names.Standard.Long)
	if d.Names.Daylight != nil {
		fmt.Println("  daylight =", d.Names.Daylight.Short, "/", d.Names.Daylight.Long)
	}
	fmt.Printf("  transitions (%d):\n", len(d.Transitions))
	for _, tr := range d.Transitions {
		fmt.Printf("    %s save %d min\n", epochhour.Time(tr.Since).Format(time.RFC3339), tr.Save)
	}
	fmt.Println()
}

func printResolution(z *tzone.Zone, at time.Time) {
	fmt.Println("At", at.UTC().Format(time.RFC3339))
	fmt.Println("  offset =", z.Offset(at), "min west")
	fmt.Println("  dst =", z.IsDST(at))
	fmt.Println("  short name =", z.ShortName(at))
	fmt.Println("  long name =", z.LongName(at))
	fmt.Println("  gmt =", z.GMTString(at))
	fmt.Println("  rfc822 =", z.RFC822String(at))
	fmt.Println("  utc =", tzone.UTCString(z.Offset(at)))
	if next, ok := z.NextTransition(at); ok {
		fmt.Printf("  next transition = %s save %d min\n", epochhour.Time(next.Since).Format(time.RFC3339), next.Save)
	} else {
		fmt.Println("  next transition = none")
	}
}
