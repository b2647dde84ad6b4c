package vec

import "testing"

func TestFromVec2(t *testing.T) {
	got := FromVec2(Vec2{X: 3, Y: 7}, 0.5)
	want := Vec3Float{X: 3, Y: 7, Z: 0.5}
	if got != want {
		t.Errorf("Ожидалось %+v, получено %+v", want, got)
	}

	if diff := got.Sub(want); diff != (Vec3Float{}) {
		t.Errorf("Разность должна быть нулевой, получено %+v", diff)
	}
}
