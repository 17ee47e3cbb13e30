package main

var y = 0

var a = 1 / y
