package entity

type Goal struct {
	ID    int64  `gorm:"column:goal_id;primaryKey;autoIncrement" json:"id"`
	Title string `gorm:"column:title;not null" json:"title"`
	Tasks []Task `gorm:"foreignKey:GoalID;references:ID;constraint:OnDelete:SET NULL" json:"tasks,omitempty"`
}

func (Goal) TableName() string {
	return "goal"
}
