package seed

import "roomly/pkg/model"

// Fixture is the initial dataset: three rooms with differing operating
// windows, seven clients, and nineteen bookings across four days. Some of
// the bookings intentionally overlap so the consistency reports have
// something to find.
type Fixture struct {
	Rooms    []*model.Room
	Clients  []*model.Client
	Bookings []*model.Booking
}

func DefaultFixture() *Fixture {
	return &Fixture{
		Rooms: []*model.Room{
			{RoomID: 1, Opening: "08:00", Closing: "20:00", Capacity: 4},
			{RoomID: 2, Opening: "08:00", Closing: "14:00", Capacity: 10},
			{RoomID: 3, Opening: "10:00", Closing: "18:00", Capacity: 6},
		},
		Clients: []*model.Client{
			{ClientID: 1, Name: "Client 1"},
			{ClientID: 2, Name: "Client 2"},
			{ClientID: 3, Name: "Client 3"},
			{ClientID: 4, Name: "Client 4"},
			{ClientID: 5, Name: "Client 5"},
			{ClientID: 6, Name: "Client 6"},
			{ClientID: 7, Name: "Client 7"},
		},
		Bookings: []*model.Booking{
			{ID: 1, RoomID: 1, ClientID: 1, Start: "2023-07-18T10:00Z", End: "2023-07-18T12:00Z"},
			{ID: 2, RoomID: 1, ClientID: 2, Start: "2023-07-18T12:00Z", End: "2023-07-18T18:00Z"},
			{ID: 3, RoomID: 1, ClientID: 3, Start: "2023-07-18T17:00Z", End: "2023-07-18T20:00Z"},
			{ID: 4, RoomID: 2, ClientID: 4, Start: "2023-07-18T12:00Z", End: "2023-07-18T14:00Z"},
			{ID: 5, RoomID: 3, ClientID: 5, Start: "2023-07-18T10:00Z", End: "2023-07-18T18:00Z"},
			{ID: 6, RoomID: 1, ClientID: 6, Start: "2023-07-19T10:00Z", End: "2023-07-19T12:00Z"},
			{ID: 7, RoomID: 2, ClientID: 6, Start: "2023-07-19T11:00Z", End: "2023-07-19T12:00Z"},
			{ID: 8, RoomID: 1, ClientID: 7, Start: "2023-07-20T10:00Z", End: "2023-07-20T20:00Z"},
			{ID: 9, RoomID: 1, ClientID: 4, Start: "2023-07-20T10:00Z", End: "2023-07-20T12:00Z"},
			{ID: 10, RoomID: 2, ClientID: 3, Start: "2023-07-20T08:00Z", End: "2023-07-20T14:00Z"},
			{ID: 11, RoomID: 3, ClientID: 2, Start: "2023-07-20T10:00Z", End: "2023-07-20T14:00Z"},
			{ID: 12, RoomID: 3, ClientID: 6, Start: "2023-07-20T14:00Z", End: "2023-07-20T18:00Z"},
			{ID: 13, RoomID: 1, ClientID: 1, Start: "2023-07-21T08:00Z", End: "2023-07-21T09:00Z"},
			{ID: 14, RoomID: 1, ClientID: 2, Start: "2023-07-21T09:00Z", End: "2023-07-21T10:00Z"},
			{ID: 15, RoomID: 1, ClientID: 3, Start: "2023-07-21T10:00Z", End: "2023-07-21T11:00Z"},
			{ID: 16, RoomID: 1, ClientID: 4, Start: "2023-07-21T11:00Z", End: "2023-07-21T12:00Z"},
			{ID: 17, RoomID: 1, ClientID: 5, Start: "2023-07-21T12:00Z", End: "2023-07-21T13:00Z"},
			{ID: 18, RoomID: 1, ClientID: 6, Start: "2023-07-21T13:00Z", End: "2023-07-21T14:00Z"},
			{ID: 19, RoomID: 1, ClientID: 7, Start: "2023-07-21T14:00Z", End: "2023-07-21T15:00Z"},
		},
	}
}
