package utils

import (
	"crypto/md5"
	"encoding/hex"
)

// CalculateMD5 computes the MD5 hash of a byte slice.
func CalculateMD5(data []byte) string {
	hasher := md5.New()
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}

// MatchCacheKey derives the content-addressed cache key for a resume/JD pair.
// The engine is deterministic, so identical inputs always map to the same report.
func MatchCacheKey(resumeText, jdText string) string {
	return CalculateMD5([]byte(resumeText + "\x00" + jdText))
}
