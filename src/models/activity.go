package models

// Activity กิจกรรมชมรม/วิชาเสริม พร้อมรายชื่อผู้เข้าร่วม
type Activity struct {
	Description     string   `json:"description" bson:"description" example:"Learn strategies and compete in chess tournaments"`
	Schedule        string   `json:"schedule" bson:"schedule" example:"Fridays, 3:30 PM - 5:00 PM"`
	MaxParticipants int      `json:"max_participants" bson:"max_participants" example:"12"`
	Participants    []string `json:"participants" bson:"participants" example:"michael@mergington.edu"`
}

// ActivityMap keyed by activity name.
type ActivityMap map[string]*Activity

// HasParticipant reports whether email is already on the roster.
func (a *Activity) HasParticipant(email string) bool {
	return a.indexOf(email) >= 0
}

// RemoveParticipant drops the first occurrence of email and keeps the order of the rest.
func (a *Activity) RemoveParticipant(email string) bool {
	i := a.indexOf(email)
	if i < 0 {
		return false
	}
	a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
	return true
}

func (a *Activity) indexOf(email string) int {
	for i, p := range a.Participants {
		if p == email {
			return i
		}
	}
	return -1
}

// Clone returns a copy whose roster does not share backing storage.
func (a *Activity) Clone() *Activity {
	c := *a
	c.Participants = append([]string(nil), a.Participants...)
	if c.Participants == nil {
		c.Participants = []string{}
	}
	return &c
}

// Clone deep-copies every activity in the map.
func (m ActivityMap) Clone() ActivityMap {
	out := make(ActivityMap, len(m))
	for name, a := range m {
		out[name] = a.Clone()
	}
	return out
}
