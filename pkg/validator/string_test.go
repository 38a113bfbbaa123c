package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestNewString(t *testing.T) {
	t.Run("passes a plain string through", func(t *testing.T) {
		s, err := validator.NewString("hello").ToString()
		require.NoError(t, err)
		assert.Equal(t, "hello", s)
	})

	t.Run("fails for non-string input", func(t *testing.T) {
		_, err := validator.NewString(3.14).ToString()
		require.Error(t, err)
		assert.EqualError(t, err, "must be a string")
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("custom type message", func(t *testing.T) {
		_, err := validator.NewString(nil, validator.WithTypeMessage("text expected")).ToString()
		assert.EqualError(t, err, "text expected")
	})

	t.Run("strip removes whitespace from both ends", func(t *testing.T) {
		s, err := validator.NewString(" hi ", validator.WithStrip()).NotEmpty().ToString()
		require.NoError(t, err)
		assert.Equal(t, "hi", s)
	})

	t.Run("one-sided stripping", func(t *testing.T) {
		s, err := validator.NewString(" hi ", validator.WithStripLeft()).ToString()
		require.NoError(t, err)
		assert.Equal(t, "hi ", s)

		s, err = validator.NewString(" hi ", validator.WithStripRight()).ToString()
		require.NoError(t, err)
		assert.Equal(t, " hi", s)
	})

	t.Run("strip with a custom character set", func(t *testing.T) {
		s, err := validator.NewString("--hi--", validator.WithStrip(), validator.WithStripChars("-")).ToString()
		require.NoError(t, err)
		assert.Equal(t, "hi", s)
	})
}

func TestStringChecks(t *testing.T) {
	t.Run("not_empty accepts content and rejects empty", func(t *testing.T) {
		_, err := validator.NewString("x").NotEmpty().ToString()
		assert.NoError(t, err)

		_, err = validator.NewString("").NotEmpty().ToString()
		assert.EqualError(t, err, "cannot be empty")
	})

	t.Run("whitespace-only input stripped then not_empty fails", func(t *testing.T) {
		_, err := validator.NewString("   ", validator.WithStrip()).NotEmpty().ToString()
		assert.EqualError(t, err, "cannot be empty")
	})

	t.Run("match anchors at the start of the value", func(t *testing.T) {
		re := regexp.MustCompile(`[a-z]+@[a-z]+`)

		_, err := validator.NewString("go@dev rest ignored").Match(re).ToString()
		assert.NoError(t, err)

		// A match later in the string does not count.
		_, err = validator.NewString("!! go@dev").Match(re).ToString()
		assert.EqualError(t, err, "incorrect format")
	})

	t.Run("length checks compare against the limits", func(t *testing.T) {
		_, err := validator.NewString("abcd").ShorterThan(5).ToString()
		assert.NoError(t, err)

		_, err = validator.NewString("abcde").ShorterThan(5).ToString()
		assert.EqualError(t, err, "length must be shorter than 5 characters")

		_, err = validator.NewString("abcde").ShorterOrEqualThan(5).ToString()
		assert.NoError(t, err)

		_, err = validator.NewString("abc").LengthEqual(3).ToString()
		assert.NoError(t, err)

		_, err = validator.NewString("abc").LengthEqual(4).ToString()
		assert.EqualError(t, err, "length must be 4 characters")

		_, err = validator.NewString("abcdef").LongerThan(5).ToString()
		assert.NoError(t, err)

		_, err = validator.NewString("abcde").LongerThan(5).ToString()
		assert.EqualError(t, err, "length must be longer than 5 characters")

		_, err = validator.NewString("abcde").LongerOrEqualThan(5).ToString()
		assert.NoError(t, err)
	})

	t.Run("length checks count runes not bytes", func(t *testing.T) {
		// Four runes, eight bytes.
		_, err := validator.NewString("日本語字").LengthEqual(4).ToString()
		assert.NoError(t, err)
	})

	t.Run("character class checks", func(t *testing.T) {
		_, err := validator.NewString("abc123").IsAlnum().ToString()
		assert.NoError(t, err)

		_, err = validator.NewString("abc 123").IsAlnum().ToString()
		assert.EqualError(t, err, "some characters are not alphanumeric")

		_, err = validator.NewString("abc").IsAlpha().ToString()
		assert.NoError(t, err)

		_, err = validator.NewString("abc1").IsAlpha().ToString()
		assert.EqualError(t, err, "some characters are not alphabetic")

		_, err = validator.NewString("0123").IsDigit().ToString()
		assert.NoError(t, err)

		_, err = validator.NewString("12a").IsDigit().ToString()
		assert.EqualError(t, err, "some characters are not digits")

		_, err = validator.NewString("abc").IsLower().ToString()
		assert.NoError(t, err)

		_, err = validator.NewString("aBc").IsLower().ToString()
		assert.EqualError(t, err, "some characters are not lowercase")

		_, err = validator.NewString("ABC").IsUpper().ToString()
		assert.NoError(t, err)

		_, err = validator.NewString("AbC").IsUpper().ToString()
		assert.EqualError(t, err, "some characters are not uppercase")

		_, err = validator.NewString(" \t\n").IsSpace().ToString()
		assert.NoError(t, err)

		_, err = validator.NewString(" x ").IsSpace().ToString()
		assert.EqualError(t, err, "some characters are not whitespace")
	})

	t.Run("character class checks fail on the empty string", func(t *testing.T) {
		// Documented policy: an empty value satisfies no character class.
		_, err := validator.NewString("").IsAlnum().ToString()
		assert.Error(t, err)

		_, err = validator.NewString("").IsDigit().ToString()
		assert.Error(t, err)

		_, err = validator.NewString("").IsSpace().ToString()
		assert.Error(t, err)
	})

	t.Run("first failure short-circuits the chain", func(t *testing.T) {
		_, err := validator.NewString("").NotEmpty().IsDigit("unreachable").ToString()
		assert.EqualError(t, err, "cannot be empty")
	})

	t.Run("custom check message", func(t *testing.T) {
		_, err := validator.NewString("").NotEmpty("please fill this in").ToString()
		assert.EqualError(t, err, "please fill this in")
	})
}

func TestStringToInt(t *testing.T) {
	t.Run("converts a numeric string", func(t *testing.T) {
		n, err := validator.NewString(" 42 ", validator.WithStrip()).NotEmpty().ToInt()
		require.NoError(t, err)
		assert.Equal(t, 42, n)
	})

	t.Run("respects the configured base", func(t *testing.T) {
		n, err := validator.NewString("1010", validator.WithBase(2)).ToInt()
		require.NoError(t, err)
		assert.Equal(t, 10, n)
	})

	t.Run("non-numeric value fails with the uniform signal", func(t *testing.T) {
		// Same error class and message as an Int evaluator's parse failure,
		// not a bare strconv error.
		_, err := validator.NewString("abc").ToInt()
		require.Error(t, err)
		assert.EqualError(t, err, "must be an integer")
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("earlier failure wins over conversion", func(t *testing.T) {
		_, err := validator.NewString("").NotEmpty().ToInt()
		assert.EqualError(t, err, "cannot be empty")
	})
}
