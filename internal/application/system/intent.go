package system

import "github.com/younwookim/arena/internal/domain/entity"

// Intent represents a decision made while scanning entities, applied
// only after the scan so the scanned collections never change underneath it.
type Intent interface {
	isIntent()
}

// FireIntent asks for a bullet to be created
type FireIntent struct {
	Shooter  entity.EntityID
	Owner    entity.Owner
	Origin   entity.Vec2
	Velocity entity.Vec2
}

func (FireIntent) isIntent() {}

// HitKind says what a bullet struck
type HitKind int

const (
	HitOutOfBounds HitKind = iota
	HitEnemy
	HitPlayer
)

// HitIntent removes a bullet and, for actor hits, deals one point of damage
type HitIntent struct {
	BulletID entity.EntityID
	Kind     HitKind
	Target   entity.EntityID // enemy id for HitEnemy, PlayerID for HitPlayer
}

func (HitIntent) isIntent() {}
