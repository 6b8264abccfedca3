package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"room_id",
			"client_id",
			"start",
			"end",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "int",
				"minimum":  1,
			},

			"room_id": bson.M{
				"bsonType": "int",
				"minimum":  1,
			},

			"client_id": bson.M{
				"bsonType": "int",
				"minimum":  1,
			},

			"start": bson.M{
				"bsonType": "string",
				"pattern":  "^\\d{4}-\\d{2}-\\d{2}T([01][0-9]|2[0-3]):[0-5][0-9]Z$",
			},

			"end": bson.M{
				"bsonType": "string",
				"pattern":  "^\\d{4}-\\d{2}-\\d{2}T([01][0-9]|2[0-3]):[0-5][0-9]Z$",
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
