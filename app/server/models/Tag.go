package models

import "gorm.io/gorm"

type Tag struct {
	gorm.Model

	Name   string `gorm:"column:name;size:255;not null"` // 标签名，不同用户之间可以重名
	UserID uint   `gorm:"column:user_id;index"`          // 所属用户

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (t Tag) String() string {
	return t.Name
}

func (t *Tag) GetID() uint          { return t.ID }
func (t *Tag) GetName() string      { return t.Name }
func (t *Tag) SetName(name string)  { t.Name = name }
func (t *Tag) SetOwner(userID uint) { t.UserID = userID }
func (t *Tag) OwnerID() uint        { return t.UserID }
