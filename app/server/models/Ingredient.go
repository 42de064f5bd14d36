package models

import "gorm.io/gorm"

type Ingredient struct {
	gorm.Model

	Name   string `gorm:"column:name;size:255;not null"` // 配料名，不同用户之间可以重名
	UserID uint   `gorm:"column:user_id;index"`          // 所属用户

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (i Ingredient) String() string {
	return i.Name
}

func (i *Ingredient) GetID() uint          { return i.ID }
func (i *Ingredient) GetName() string      { return i.Name }
func (i *Ingredient) SetName(name string)  { i.Name = name }
func (i *Ingredient) SetOwner(userID uint) { i.UserID = userID }
func (i *Ingredient) OwnerID() uint        { return i.UserID }
