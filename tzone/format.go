package tzone

import "fmt"

// signAbs splits an offset in minutes west of Greenwich into the sign
// character of its conventional east-positive rendering and its
// absolute value. This is the single place where the west-positive
// storage convention turns into a display sign.
func signAbs(offsetMinutes int) (byte, int) {
	if offsetMinutes <= 0 {
		return '+', -offsetMinutes
	}
	return '-', offsetMinutes
}

// GMTString renders an offset in minutes west of Greenwich as a GMT
// label with two-digit hour and minute fields:
// GMTString(480) is "GMT-08:00" and GMTString(-330) is "GMT+05:30".
func GMTString(offsetMinutes int) string {
	sign, abs := signAbs(offsetMinutes)
	return fmt.Sprintf("GMT%c%02d:%02d", sign, (abs/60)%100, abs%60)
}

// RFC822String renders a conventional UTC offset, minutes east of
// Greenwich positive, as an RFC 822 zone with no separator:
// RFC822String(330) is "+0530" and RFC822String(-480) is "-0800".
//
// Unlike the other composers its input uses the conventional sign.
// Zone.RFC822String re-inverts the resolved offset before calling it.
func RFC822String(offsetMinutes int) string {
	sign, abs := signAbs(-offsetMinutes)
	return fmt.Sprintf("%c%02d%02d", sign, abs/60, abs%60)
}

// UTCString renders an offset in minutes west of Greenwich as a UTC
// label with an unpadded hour field. The minute field appears only
// when the offset is not a whole number of hours: UTCString(0) is
// "UTC", UTCString(-120) is "UTC+2" and UTCString(330) is "UTC-5:30".
func UTCString(offsetMinutes int) string {
	if offsetMinutes == 0 {
		return "UTC"
	}
	sign, abs := signAbs(offsetMinutes)
	if abs%60 == 0 {
		return fmt.Sprintf("UTC%c%d", sign, abs/60)
	}
	return fmt.Sprintf("UTC%c%d:%02d", sign, abs/60, abs%60)
}

// PosixID renders an offset in minutes west of Greenwich as a POSIX
// style zone id in the Etc area: PosixID(0) is "Etc/GMT", PosixID(-120)
// is "Etc/GMT+2" and PosixID(330) is "Etc/GMT-5:30". The sign follows
// the same display convention as UTCString, not the inverted sign the
// IANA Etc area uses.
func PosixID(offsetMinutes int) string {
	if offsetMinutes == 0 {
		return "Etc/GMT"
	}
	sign, abs := signAbs(offsetMinutes)
	if abs%60 == 0 {
		return fmt.Sprintf("Etc/GMT%c%d", sign, abs/60)
	}
	return fmt.Sprintf("Etc/GMT%c%d:%02d", sign, abs/60, abs%60)
}
