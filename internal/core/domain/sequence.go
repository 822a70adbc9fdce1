package domain

// SequenceNumber is a numbering-scheme registry entry (`sequenceNumbers`
// collection), unrelated to the employee aggregate.
type SequenceNumber struct {
	ID                  string `firestore:"-" json:"id"`
	Type                string `firestore:"type" json:"type"`
	Prefix              string `firestore:"prefix" json:"prefix"`
	NextAvailableNumber int    `firestore:"nextAvailableNumber" json:"nextAvailableNumber"`
	CreatedBy           string `firestore:"createdBy" json:"createdBy"`
	CreatedAt           string `firestore:"createdAt" json:"createdAt"`
}
