package section

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	. "github.com/smartystreets/goconvey/convey"
)

type recorder struct {
	tweens []Tween
}

func (r *recorder) StartRotationTween(tw Tween) {
	r.tweens = append(r.tweens, tw)
}

func TestIndex(t *testing.T) {
	Convey("Index rounds offset over viewport height", t, func() {
		So(Index(0, 1000), ShouldEqual, 0)
		So(Index(499, 1000), ShouldEqual, 0)
		So(Index(1499, 1000), ShouldEqual, 1)
		So(Index(1500, 1000), ShouldEqual, 2)
		So(Index(8000, 1000), ShouldEqual, 8)

		Convey("halves round away from zero", func() {
			So(Index(500, 1000), ShouldEqual, 1)
			So(Index(2500, 1000), ShouldEqual, 3)
		})

		Convey("zero height maps to the first section", func() {
			So(Index(1234, 0), ShouldEqual, 0)
		})

		Convey("huge and infinite offsets saturate instead of wrapping", func() {
			So(Index(1e30, 1000), ShouldEqual, maxIndex)
			So(Index(math32.Inf(1), 1000), ShouldEqual, maxIndex)
			So(Index(-1e30, 1000), ShouldEqual, -maxIndex)
			So(Index(math32.NaN(), 1000), ShouldEqual, 0)
		})
	})
}

func TestTrackerTransitions(t *testing.T) {
	Convey("Given a tracker over eight sections", t, func() {
		rec := &recorder{}
		tr := NewTracker(8, PolicyClamp, rec)
		So(tr.Current(), ShouldEqual, 0)

		Convey("scrolling within the same section issues nothing", func() {
			for _, off := range []float32{0, 100, 250, 499} {
				changed, err := tr.Scroll(off, 1000, 0)
				So(err, ShouldBeNil)
				So(changed, ShouldBeFalse)
			}
			So(rec.tweens, ShouldBeEmpty)
		})

		Convey("crossing a boundary turns both sections once, at the same moment", func() {
			changed, err := tr.Scroll(1499, 1000, 3.25)
			So(err, ShouldBeNil)
			So(changed, ShouldBeTrue)
			So(tr.Current(), ShouldEqual, 1)
			So(rec.tweens, ShouldHaveLength, 2)

			leave, enter := rec.tweens[0], rec.tweens[1]
			So(leave.Section, ShouldEqual, 0)
			So(enter.Section, ShouldEqual, 1)
			for _, tw := range rec.tweens {
				So(tw.Axis, ShouldEqual, AxisY)
				So(tw.Delta, ShouldEqual, float32(math32.Pi))
				So(tw.Duration, ShouldEqual, float32(1))
				So(tw.Ease, ShouldEqual, TurnEase)
			}
			So(leave.StartAt, ShouldEqual, 3.25)
			So(enter.StartAt, ShouldEqual, leave.StartAt)

			Convey("repeated events at the new index stay quiet", func() {
				for _, off := range []float32{1200, 1000, 800} {
					changed, err := tr.Scroll(off, 1000, 4)
					So(err, ShouldBeNil)
					So(changed, ShouldBeFalse)
				}
				So(rec.tweens, ShouldHaveLength, 2)
			})
		})

		Convey("jumping several sections turns only the two ends", func() {
			_, err := tr.Scroll(5000, 1000, 0)
			So(err, ShouldBeNil)
			So(rec.tweens, ShouldHaveLength, 2)
			So(rec.tweens[0].Section, ShouldEqual, 0)
			So(rec.tweens[1].Section, ShouldEqual, 5)
		})

		Convey("scrolling back and forth fires on every change", func() {
			for _, off := range []float32{1000, 0, 1000, 0} {
				_, err := tr.Scroll(off, 1000, 0)
				So(err, ShouldBeNil)
			}
			So(rec.tweens, ShouldHaveLength, 8)
			So(tr.Current(), ShouldEqual, 0)
		})
	})
}

func TestTrackerOutOfRange(t *testing.T) {
	Convey("Scrolling to 8000px over 1000px sections computes index 8", t, func() {
		So(Index(8000, 1000), ShouldEqual, 8)

		Convey("clamp lands on the last section", func() {
			rec := &recorder{}
			tr := NewTracker(8, PolicyClamp, rec)
			changed, err := tr.Scroll(8000, 1000, 0)
			So(err, ShouldBeNil)
			So(changed, ShouldBeTrue)
			So(tr.Current(), ShouldEqual, 7)
			So(rec.tweens[1].Section, ShouldEqual, 7)

			changed, err = tr.Scroll(9000, 1000, 0)
			So(err, ShouldBeNil)
			So(changed, ShouldBeFalse)
		})

		Convey("clamp pins negative offsets to the first section", func() {
			tr := NewTracker(8, PolicyClamp, nil)
			_, _ = tr.Scroll(3000, 1000, 0)
			changed, err := tr.Scroll(-2000, 1000, 0)
			So(err, ShouldBeNil)
			So(changed, ShouldBeTrue)
			So(tr.Current(), ShouldEqual, 0)
		})

		Convey("clamp sends infinite offsets to the last section", func() {
			tr := NewTracker(8, PolicyClamp, nil)
			changed, err := tr.Scroll(1e30, 1000, 0)
			So(err, ShouldBeNil)
			So(changed, ShouldBeTrue)
			So(tr.Current(), ShouldEqual, 7)

			_, _ = tr.Scroll(0, 1000, 0)
			_, err = tr.Scroll(math32.Inf(1), 1000, 0)
			So(err, ShouldBeNil)
			So(tr.Current(), ShouldEqual, 7)
		})

		Convey("ignore keeps the previous section", func() {
			rec := &recorder{}
			tr := NewTracker(8, PolicyIgnore, rec)
			changed, err := tr.Scroll(8000, 1000, 0)
			So(err, ShouldBeNil)
			So(changed, ShouldBeFalse)
			So(tr.Current(), ShouldEqual, 0)
			So(rec.tweens, ShouldBeEmpty)
		})

		Convey("strict reports the overflow", func() {
			tr := NewTracker(8, PolicyStrict, &recorder{})
			changed, err := tr.Scroll(8000, 1000, 0)
			So(errors.Is(err, ErrSectionOutOfRange), ShouldBeTrue)
			So(changed, ShouldBeFalse)
			So(tr.Current(), ShouldEqual, 0)
		})
	})
}

func TestParsePolicy(t *testing.T) {
	Convey("ParsePolicy", t, func() {
		for in, want := range map[string]Policy{"": PolicyClamp, "clamp": PolicyClamp, "ignore": PolicyIgnore, "strict": PolicyStrict} {
			p, err := ParsePolicy(in)
			So(err, ShouldBeNil)
			So(p, ShouldEqual, want)
		}
		_, err := ParsePolicy("wrap")
		So(err, ShouldNotBeNil)
	})
}

func TestSectionAdvance(t *testing.T) {
	Convey("Ambient spin integrates per axis", t, func() {
		s := &Section{Spin: [3]float32{0.15, 0.25, 0.25}}
		So(s.Spinning(), ShouldBeTrue)
		s.Advance(2)
		So(s.Rotation[0], ShouldAlmostEqual, 0.3, 1e-6)
		So(s.Rotation[1], ShouldAlmostEqual, 0.5, 1e-6)
		So(s.Rotation[2], ShouldAlmostEqual, 0.5, 1e-6)

		still := &Section{}
		So(still.Spinning(), ShouldBeFalse)
		*still.RotationOf(AxisY) = 1
		So(still.Rotation[1], ShouldEqual, float32(1))
	})
}
