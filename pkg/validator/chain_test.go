package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestIntChain(t *testing.T) {
	t.Run("replays recorded checks in order", func(t *testing.T) {
		chain := validator.NewIntChain().GreaterThan(10).LesserThan(20)

		n, err := chain.Validate("15")
		require.NoError(t, err)
		assert.Equal(t, 15, n)

		_, err = chain.Validate("5")
		assert.EqualError(t, err, "must be greater than 10")

		_, err = chain.Validate("25")
		assert.EqualError(t, err, "must be lesser than 20")
	})

	t.Run("is behaviorally equivalent to the eager form", func(t *testing.T) {
		chain := validator.NewIntChain().GreaterOrEqualThan(0).LesserOrEqualThan(100)

		for _, input := range []string{"-1", "0", "50", "100", "101", "abc", ""} {
			eagerN, eagerErr := validator.NewInt(input).GreaterOrEqualThan(0).LesserOrEqualThan(100).ToInt()
			lazyN, lazyErr := chain.Validate(input)

			assert.Equal(t, eagerN, lazyN, "value for input %q", input)
			if eagerErr == nil {
				assert.NoError(t, lazyErr, "input %q", input)
			} else {
				assert.EqualError(t, lazyErr, eagerErr.Error(), "input %q", input)
			}
		}
	})

	t.Run("carries construction options", func(t *testing.T) {
		chain := validator.NewIntChain(validator.WithBase(16), validator.WithStrip()).GreaterThan(0)

		n, err := chain.Validate("  ff ")
		require.NoError(t, err)
		assert.Equal(t, 255, n)
	})

	t.Run("is reusable across values", func(t *testing.T) {
		chain := validator.NewIntChain().GreaterThan(0)

		for _, input := range []string{"1", "2", "3"} {
			_, err := chain.Validate(input)
			assert.NoError(t, err)
		}
	})

	t.Run("extending a chain does not mutate the original", func(t *testing.T) {
		base := validator.NewIntChain().GreaterThan(0)
		narrow := base.LesserThan(10)

		_, err := base.Validate("50")
		assert.NoError(t, err)

		_, err = narrow.Validate("50")
		assert.EqualError(t, err, "must be lesser than 10")
	})

	t.Run("Func adapts to the property shape", func(t *testing.T) {
		fn := validator.NewIntChain().GreaterThan(10).Func()

		v, err := fn("15")
		require.NoError(t, err)
		assert.Equal(t, 15, v)

		_, err = fn("5")
		assert.True(t, validator.IsValidationError(err))
	})
}

func TestStringChain(t *testing.T) {
	t.Run("replays recorded checks in order", func(t *testing.T) {
		chain := validator.NewStringChain(validator.WithStrip()).NotEmpty().ShorterThan(6)

		s, err := chain.Validate(" hi ")
		require.NoError(t, err)
		assert.Equal(t, "hi", s)

		_, err = chain.Validate("   ")
		assert.EqualError(t, err, "cannot be empty")

		_, err = chain.Validate("toolong")
		assert.EqualError(t, err, "length must be shorter than 6 characters")
	})

	t.Run("is behaviorally equivalent to the eager form", func(t *testing.T) {
		re := regexp.MustCompile(`[a-z]+`)
		chain := validator.NewStringChain().NotEmpty().Match(re).LongerThan(2)

		for _, input := range []any{"abc", "ab", "123", "", 7} {
			eagerS, eagerErr := validator.NewString(input).NotEmpty().Match(re).LongerThan(2).ToString()
			lazyS, lazyErr := chain.Validate(input)

			assert.Equal(t, eagerS, lazyS, "value for input %v", input)
			if eagerErr == nil {
				assert.NoError(t, lazyErr, "input %v", input)
			} else {
				assert.EqualError(t, lazyErr, eagerErr.Error(), "input %v", input)
			}
		}
	})

	t.Run("ValidateInt terminates with the integer conversion", func(t *testing.T) {
		chain := validator.NewStringChain(validator.WithStrip()).NotEmpty()

		n, err := chain.ValidateInt(" 42 ")
		require.NoError(t, err)
		assert.Equal(t, 42, n)

		_, err = chain.ValidateInt("nope")
		assert.EqualError(t, err, "must be an integer")
	})

	t.Run("extending a chain does not mutate the original", func(t *testing.T) {
		base := validator.NewStringChain().NotEmpty()
		narrow := base.IsDigit()

		_, err := base.Validate("abc")
		assert.NoError(t, err)

		_, err = narrow.Validate("abc")
		assert.EqualError(t, err, "some characters are not digits")
	})

	t.Run("Func adapts to the property shape", func(t *testing.T) {
		fn := validator.NewStringChain(validator.WithStrip()).NotEmpty().Func()

		v, err := fn(" hi ")
		require.NoError(t, err)
		assert.Equal(t, "hi", v)

		_, err = fn("  ")
		assert.True(t, validator.IsValidationError(err))
	})
}
