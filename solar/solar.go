// Package solar computes sunrise and sunset times for a location so
// callers can anchor a render timeline without a weather provider.
package solar

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// Zenith angle for official sunrise/sunset, including refraction and
// the solar disc radius.
const zenithDeg = 90.833

func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }
func radToDeg(rad float64) float64 { return rad * 180.0 / math.Pi }
func fixAngle(a float64) float64   { return a - 360.0*math.Floor(a/360.0) }

// solarPosition returns the equation of time in minutes and the solar
// declination in degrees at time t.
func solarPosition(t time.Time) (eqTimeMin, declDeg float64) {
	jd := julian.TimeToJD(t.UTC())
	T := (jd - 2451545.0) / 36525.0

	L0 := fixAngle(280.46646 + T*(36000.76983+T*0.0003032))
	M := fixAngle(357.52911 + T*(35999.05029-T*0.0001537))
	e := 0.016708634 - T*(0.000042037+T*0.0000001267)
	C := math.Sin(degToRad(M))*(1.914602-T*(0.004817+T*0.000014)) +
		math.Sin(degToRad(2*M))*(0.019993-T*0.000101) +
		math.Sin(degToRad(3*M))*0.000289
	sunLong := L0 + C
	omega := 125.04 - 1934.136*T
	lambda := sunLong - 0.00569 - 0.00478*math.Sin(degToRad(omega))
	eps0 := 23 + (26+(21.448-T*(46.815+T*(0.00059-T*0.001813)))/60)/60
	declRad := math.Asin(math.Sin(degToRad(eps0)) * math.Sin(degToRad(lambda)))

	y := math.Tan(degToRad(eps0)/2) * math.Tan(degToRad(eps0)/2)
	eqTimeMin = radToDeg(y*math.Sin(degToRad(2*L0))-
		2*e*math.Sin(degToRad(M))+
		4*e*y*math.Sin(degToRad(M))*math.Cos(degToRad(2*L0))-
		0.5*y*y*math.Sin(degToRad(4*L0))-
		1.25*e*e*math.Sin(degToRad(2*M))) * 4

	return eqTimeMin, radToDeg(declRad)
}

// SunriseSunset returns the sunrise and sunset instants for the calendar
// day containing date at the given coordinates. ok is false during polar
// day or polar night, when the sun never crosses the horizon.
func SunriseSunset(date time.Time, latitude, longitude float64) (sunrise, sunset time.Time, ok bool) {
	u := date.UTC()
	midnight := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	noon := midnight.Add(12 * time.Hour)

	eqTimeMin, declDeg := solarPosition(noon)

	latRad := degToRad(latitude)
	declRad := degToRad(declDeg)
	cosHA := (math.Cos(degToRad(zenithDeg)) - math.Sin(latRad)*math.Sin(declRad)) /
		(math.Cos(latRad) * math.Cos(declRad))
	if cosHA < -1 || cosHA > 1 {
		return time.Time{}, time.Time{}, false
	}
	haDeg := radToDeg(math.Acos(cosHA))

	riseMin := 720 - 4*(longitude+haDeg) - eqTimeMin
	setMin := 720 - 4*(longitude-haDeg) - eqTimeMin

	sunrise = midnight.Add(time.Duration(riseMin * float64(time.Minute)))
	sunset = midnight.Add(time.Duration(setMin * float64(time.Minute)))
	return sunrise, sunset, true
}
