package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkHasherRejectsDuplicates(t *testing.T) {
	f := newFixture(t)
	kennel := f.kennel("Metro H3")
	hasher := f.hasher(kennel.ID, "Mary Smith", "Just Mary")
	event := f.event(kennel.ID, "Trail", 1)

	err := f.events.LinkHasher(context.Background(), EventHasher{
		EventID:  event.ID,
		HasherID: hasher.ID,
		Hare:     true,
	})
	require.NoError(t, err)

	err = f.events.LinkHasher(context.Background(), EventHasher{
		EventID:  event.ID,
		HasherID: hasher.ID,
	})
	assert.ErrorIs(t, err, ErrAlreadyLinked)

	// the original row with its role flags survives the rejected insert
	participants, err := f.events.ListParticipants(context.Background(), event.ID)
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.True(t, participants[0].Hare)
	assert.False(t, participants[0].Jedi)
}

func TestUnlinkHashers(t *testing.T) {
	f := newFixture(t)
	kennel := f.kennel("Metro H3")
	mary := f.hasher(kennel.ID, "Mary Smith", "Just Mary")
	bob := f.hasher(kennel.ID, "Bob Jones", "Backsliding Bob")
	event := f.event(kennel.ID, "Trail", 1)
	f.link(event.ID, mary.ID, false, false)
	f.link(event.ID, bob.ID, false, false)

	err := f.events.UnlinkHashers(context.Background(), []uint{mary.ID}, event.ID)
	require.NoError(t, err)

	participants, err := f.events.ListParticipants(context.Background(), event.ID)
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, bob.ID, participants[0].HasherID)
}

func TestUnlinkHashersNoMatch(t *testing.T) {
	f := newFixture(t)
	kennel := f.kennel("Metro H3")
	event := f.event(kennel.ID, "Trail", 1)

	err := f.events.UnlinkHashers(context.Background(), []uint{4242}, event.ID)
	assert.ErrorIs(t, err, ErrNothingDeleted)
}

func TestUpdateEventUnknownID(t *testing.T) {
	f := newFixture(t)
	kennel := f.kennel("Metro H3")

	_, err := f.events.Update(context.Background(), Event{ID: 4242, KennelID: kennel.ID, Title: "Ghost Trail"})
	assert.ErrorIs(t, err, ErrNothingUpdated)
}

func TestSearchEventsByTerm(t *testing.T) {
	f := newFixture(t)
	kennel := f.kennel("Metro H3")

	anniversary := f.event(kennel.ID, "Anniversary Trail", 250)
	anniversary.Location = "Trailhead Park"
	_, err := f.events.Update(context.Background(), anniversary)
	require.NoError(t, err)
	f.event(kennel.ID, "Pub Crawl", 251)

	events, err := f.events.SearchByTerm(context.Background(), "annivers")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Anniversary Trail", events[0].Title)

	events, err = f.events.SearchByTerm(context.Background(), "TRAILHEAD")
	require.NoError(t, err)
	assert.Len(t, events, 1, "location matches are case insensitive")
}

func TestListDeliveriesForEvent(t *testing.T) {
	f := newFixture(t)
	kennel := f.kennel("Metro H3")
	hasher := f.hasher(kennel.ID, "Mary Smith", "Just Mary")
	def := f.def(kennel.ID, "hash", 10, "Red Dress")
	event := f.event(kennel.ID, "Trail", 1)
	f.link(event.ID, hasher.ID, false, false)

	_, err := f.honors.InsertDelivery(context.Background(), HonorDelivery{
		HonorID:  def.ID,
		HasherID: hasher.ID,
		EventID:  event.ID,
	})
	require.NoError(t, err)

	deliveries, err := f.events.ListDeliveries(context.Background(), event.ID)
	require.NoError(t, err)
	require.Len(t, deliveries, 1)
	assert.Equal(t, "Red Dress", deliveries[0].Title)
	assert.Equal(t, "Just Mary", deliveries[0].HasherName)
	assert.Equal(t, "hash", deliveries[0].Category)
}
