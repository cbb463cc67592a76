package core

// ImageEntry identifies one discovered gallery image by the mission directory
// it sits in and its base file name, case as found on disk.
type ImageEntry struct {
	MissionID string `json:"missionId"`
	Filename  string `json:"filename"`
}

// NewImageEntry pairs a mission identifier with a file name.
func NewImageEntry(missionID, filename string) ImageEntry {
	return ImageEntry{MissionID: missionID, Filename: filename}
}

// Path returns the entry's location relative to the images root, using
// forward slashes as the gallery front end expects.
func (e ImageEntry) Path() string {
	return e.MissionID + "/" + e.Filename
}
