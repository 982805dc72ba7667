package messages_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validmsg/pkg/messages"
)

type proxyMessages struct {
	own      messages.Map
	defaults messages.Map
}

func (p *proxyMessages) Messages() messages.Map { return p.own }

func (p *proxyMessages) SetDefaults(d messages.Map) { p.defaults = d }

func (p *proxyMessages) MessageForKey(string) (string, bool) { return "", false }

func customLookup(key string) (string, bool) {
	if key == "custom-lookup" {
		return "Custom lookup", true
	}
	return "", false
}

func TestSource_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("map source merges over defaults", func(t *testing.T) {
		t.Parallel()
		set, err := messages.FromMap(messages.Map{"custom": "C"}).Resolve(messages.Defaults())
		require.NoError(t, err)

		assert.Equal(t, "C", set.Get("custom"))
		assert.Equal(t, messages.Defaults()["presence"], set.Get("presence"))
		assert.Nil(t, set.Instance())
	})

	t.Run("instance receives defaults in place", func(t *testing.T) {
		t.Parallel()
		inst := &proxyMessages{own: messages.Map{"custom": "[CUSTOM] {description}"}}

		set, err := messages.FromInstance(inst).Resolve(messages.Defaults())
		require.NoError(t, err)

		assert.Equal(t, messages.Defaults(), inst.defaults)
		assert.Same(t, inst, set.Instance())
		assert.Equal(t, "[CUSTOM] Custom", set.MessageFor("custom", messages.M{
			"description": set.DescriptionFor("custom"),
		}))
	})

	t.Run("factory is instantiated with defaults", func(t *testing.T) {
		t.Parallel()
		set, err := messages.FromFactory(messages.NewObjectFactory(
			messages.Map{"custom": "C"}, customLookup,
		)).Resolve(messages.Defaults())
		require.NoError(t, err)

		obj, ok := set.Instance().(*messages.Object)
		require.True(t, ok, "expected an instantiated *messages.Object")
		assert.Equal(t, messages.Defaults(), obj.Defaults())
		assert.Equal(t, messages.Defaults(), set.Defaults())
		assert.Equal(t, "Custom lookup", set.Get("custom-lookup"))
	})

	t.Run("factory error is propagated", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		_, err := messages.FromFactory(func(messages.Map) (messages.Instance, error) {
			return nil, boom
		}).Resolve(messages.Defaults())

		require.ErrorIs(t, err, messages.ErrFactoryFailed)
		require.ErrorIs(t, err, boom)
	})

	t.Run("invalid shapes", func(t *testing.T) {
		t.Parallel()
		sources := map[string]messages.Source{
			"zero value":         {},
			"nil factory":        messages.FromFactory(nil),
			"nil instance":       messages.FromInstance(nil),
			"factory nil result": messages.FromFactory(func(messages.Map) (messages.Instance, error) { return nil, nil }),
		}

		for name, src := range sources {
			_, err := src.Resolve(messages.Defaults())
			assert.ErrorIs(t, err, messages.ErrInvalidMessageSource, name)
		}
	})

	t.Run("nil map is a valid map source", func(t *testing.T) {
		t.Parallel()
		set, err := messages.FromMap(nil).Resolve(messages.Defaults())
		require.NoError(t, err)
		assert.Equal(t, messages.Defaults(), set.Entries())
	})
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "factory", messages.FromFactory(nil).Kind().String())
	assert.Equal(t, "instance", messages.FromInstance(nil).Kind().String())
	assert.Equal(t, "map", messages.FromMap(nil).Kind().String())
	assert.Equal(t, "invalid", messages.Source{}.Kind().String())
}
